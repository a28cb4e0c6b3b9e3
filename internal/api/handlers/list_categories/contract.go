package list_categories

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

type CategoryService interface {
	List(ctx context.Context) (*models.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
