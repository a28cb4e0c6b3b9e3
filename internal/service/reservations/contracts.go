package reservations

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByRenter(ctx context.Context, renterID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByEquipmentIDs(ctx context.Context, equipmentIDs []int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	Confirm(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int64) error
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// AggregateMaintainer интерфейс сервиса пересчета производных полей
// Вызывается синхронно внутри транзакции каждого перехода: переход
// не считается завершенным, пока производное состояние оборудования
// его не отражает
type AggregateMaintainer interface {
	RecomputeAvailability(ctx context.Context, equipmentID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс диспетчера уведомлений (fire-and-forget)
type Notifier interface {
	Emit(eventKind string, payload interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
