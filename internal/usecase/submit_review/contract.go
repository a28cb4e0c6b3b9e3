package submit_review

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) (*domain.Review, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Review, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// AggregateMaintainer интерфейс сервиса пересчета производных полей
type AggregateMaintainer interface {
	RecomputeRating(ctx context.Context, equipmentID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
