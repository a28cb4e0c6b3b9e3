package aggregates

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	UpdateAvailability(ctx context.Context, id int64, availability domain.EquipmentAvailability) error
	UpdateRating(ctx context.Context, id int64, ratingAverage float64, reviewCount int) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountReserving(ctx context.Context, equipmentID int64) (int, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	AggregateByEquipment(ctx context.Context, equipmentID int64) (float64, int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
