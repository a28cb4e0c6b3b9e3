package create_category

import (
	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

// CreateCategoryRequest HTTP request model
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateCategoryRequest) ToServiceRequest() *models.CreateCategoryRequest {
	return &models.CreateCategoryRequest{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
	}
}
