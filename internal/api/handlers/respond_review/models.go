package respond_review

import (
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

// RespondToReviewRequest HTTP request model
type RespondToReviewRequest struct {
	OrgID int64  `json:"orgId"`
	Text  string `json:"text"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RespondToReviewRequest) ToServiceRequest() *models.RespondToReviewRequest {
	return &models.RespondToReviewRequest{
		OrgID: r.OrgID,
		Text:  r.Text,
	}
}
