package update_category

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

type CategoryService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
