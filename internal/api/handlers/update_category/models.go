package update_category

import (
	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

// UpdateCategoryRequest HTTP request model
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCategoryRequest) ToServiceRequest() *models.UpdateCategoryRequest {
	return &models.UpdateCategoryRequest{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
	}
}
