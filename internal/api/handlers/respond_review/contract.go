package respond_review

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type ReviewService interface {
	Respond(ctx context.Context, id int64, req *models.RespondToReviewRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
