package delete_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

const (
	msgInvalidReviewID    = "некорректный ID отзыва"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "отзыв не найден"
	msgForbidden          = "доступ запрещен"
)

// DeleteReviewRequest HTTP request model
type DeleteReviewRequest struct {
	OrgID int64 `json:"orgId"`
}

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

// Handle DELETE /api/v1/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewIDStr := vars["reviewId"]

	reviewID, err := strconv.ParseInt(reviewIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req DeleteReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /reviews/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.DeleteReviewRequest{OrgID: req.OrgID}

	if err := h.service.Delete(r.Context(), reviewID, serviceReq); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("DELETE /reviews/{id} - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("DELETE /reviews/{id} - Access denied: review_id=%d, org_id=%d", reviewID, req.OrgID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed to delete review: review_id=%d, error=%v",
				reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deactivated: review_id=%d, org_id=%d", reviewID, req.OrgID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
