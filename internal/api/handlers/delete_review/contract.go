package delete_review

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type ReviewService interface {
	Delete(ctx context.Context, id int64, req *models.DeleteReviewRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
