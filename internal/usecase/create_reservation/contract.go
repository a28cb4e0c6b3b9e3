package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindBlockingInRange(ctx context.Context, equipmentID int64, rng domain.DateRange) ([]*domain.Reservation, error)
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// AccountClient интерфейс клиента AccountService
type AccountClient interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AggregateMaintainer интерфейс сервиса пересчета производных полей
type AggregateMaintainer interface {
	RecomputeAvailability(ctx context.Context, equipmentID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс диспетчера уведомлений (fire-and-forget)
type Notifier interface {
	Emit(eventKind string, payload interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
