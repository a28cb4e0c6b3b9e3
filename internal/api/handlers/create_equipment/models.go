package create_equipment

import (
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

// CreateEquipmentRequest HTTP request model
type CreateEquipmentRequest struct {
	OwnerID     int64   `json:"ownerId"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DailyRate   float64 `json:"dailyRate"`
	Deposit     float64 `json:"deposit"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateEquipmentRequest) ToServiceRequest() *models.CreateEquipmentRequest {
	return &models.CreateEquipmentRequest{
		OwnerID:     r.OwnerID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		DailyRate:   r.DailyRate,
		Deposit:     r.Deposit,
	}
}
