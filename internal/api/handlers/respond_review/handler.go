package respond_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
)

const (
	msgInvalidReviewID    = "некорректный ID отзыва"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "отзыв не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidResponse    = "некорректный текст ответа"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews/{reviewId}/response
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewIDStr := vars["reviewId"]

	reviewID, err := strconv.ParseInt(reviewIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reviews/{id}/response - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req RespondToReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews/{id}/response - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Respond(r.Context(), reviewID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("POST /reviews/{id}/response - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /reviews/{id}/response - Access denied: review_id=%d, org_id=%d",
				reviewID, req.OrgID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews/{id}/response - Invalid input: review_id=%d, error=%v", reviewID, err)
			handlers.RespondBadRequest(w, msgInvalidResponse)

		default:
			h.logger.Error("POST /reviews/{id}/response - Failed to respond to review: review_id=%d, error=%v",
				reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews/{id}/response - Owner response saved: review_id=%d, org_id=%d",
		reviewID, req.OrgID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
