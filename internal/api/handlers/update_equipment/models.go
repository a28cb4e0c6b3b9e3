package update_equipment

import (
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

// UpdateEquipmentRequest HTTP request model
// Затрагивает только переданные поля; тарифы существующих бронирований
// не пересчитываются
type UpdateEquipmentRequest struct {
	OrgID       int64    `json:"orgId"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DailyRate   *float64 `json:"dailyRate,omitempty"`
	Deposit     *float64 `json:"deposit,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateEquipmentRequest) ToServiceRequest() *models.UpdateEquipmentRequest {
	return &models.UpdateEquipmentRequest{
		OrgID:       r.OrgID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		DailyRate:   r.DailyRate,
		Deposit:     r.Deposit,
	}
}
