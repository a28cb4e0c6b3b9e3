package reviews

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]*domain.Review, error)
	AggregateByEquipment(ctx context.Context, equipmentID int64) (float64, int, error)
	DistributionByEquipment(ctx context.Context, equipmentID int64) (map[int]int, error)
	SetOwnerResponse(ctx context.Context, id int64, text string) error
	Deactivate(ctx context.Context, id int64) error
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// AggregateMaintainer интерфейс сервиса пересчета производных полей
type AggregateMaintainer interface {
	RecomputeRating(ctx context.Context, equipmentID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
