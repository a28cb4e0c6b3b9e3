package set_equipment_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	OrgID        int64  `json:"orgId"`
	Availability string `json:"availability"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetAvailabilityRequest) ToServiceRequest() *models.SetAvailabilityRequest {
	return &models.SetAvailabilityRequest{
		OrgID:        r.OrgID,
		Availability: r.Availability,
	}
}
