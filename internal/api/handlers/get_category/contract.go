package get_category

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

type CategoryService interface {
	GetByID(ctx context.Context, id int64) (*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
