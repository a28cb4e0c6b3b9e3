package equipment

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	UpdateAvailability(ctx context.Context, id int64, availability domain.EquipmentAvailability) error
	Deactivate(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountReserving(ctx context.Context, equipmentID int64) (int, error)
}

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

// AccountClient интерфейс клиента AccountService
type AccountClient interface {
	Exists(ctx context.Context, id int64) (bool, error)
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
