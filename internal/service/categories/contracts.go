package categories

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, cat *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
