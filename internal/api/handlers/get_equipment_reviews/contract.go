package get_equipment_reviews

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByEquipment(ctx context.Context, equipmentID int64) (*models.EquipmentReviewsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
