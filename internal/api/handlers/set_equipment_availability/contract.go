package set_equipment_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

type EquipmentService interface {
	SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
