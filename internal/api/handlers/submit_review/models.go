package submit_review

import (
	"time"

	submitReview "github.com/m04kA/SMC-RentalService/internal/usecase/submit_review"
)

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	ReservationID int64   `json:"reservationId"`
	AuthorID      int64   `json:"authorId"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID            int64   `json:"id"`
	EquipmentID   int64   `json:"equipmentId"`
	AuthorID      int64   `json:"authorId"`
	ReservationID int64   `json:"reservationId"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReviewRequest) ToUseCaseRequest() *submitReview.Request {
	return &submitReview.Request{
		ReservationID: r.ReservationID,
		AuthorID:      r.AuthorID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReview.Response) *ReviewResponse {
	return &ReviewResponse{
		ID:            resp.ID,
		EquipmentID:   resp.EquipmentID,
		AuthorID:      resp.AuthorID,
		ReservationID: resp.ReservationID,
		Rating:        resp.Rating,
		Comment:       resp.Comment,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
