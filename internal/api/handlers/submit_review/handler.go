package submit_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	submitReview "github.com/m04kA/SMC-RentalService/internal/usecase/submit_review"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgReservationNotFound    = "бронирование не найдено"
	msgNotAuthorized          = "отзыв может оставить только арендатор бронирования"
	msgReservationNotEligible = "отзыв можно оставить только по завершенному бронированию"
	msgInvalidRating          = "оценка должна быть от 1 до 5"
	msgDuplicateReview        = "отзыв по этому бронированию уже существует"
	msgInvalidReviewData      = "некорректные данные отзыва"
)

type Handler struct {
	useCase SubmitReviewUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitReview.ErrReservationNotFound):
			h.logger.Warn("POST /reviews - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, submitReview.ErrNotAuthorized):
			h.logger.Warn("POST /reviews - Not authorized: reservation_id=%d, author_id=%d",
				req.ReservationID, req.AuthorID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, submitReview.ErrReservationNotEligible):
			h.logger.Warn("POST /reviews - Reservation not eligible: reservation_id=%d", req.ReservationID)
			handlers.RespondBadRequest(w, msgReservationNotEligible)

		case errors.Is(err, submitReview.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: reservation_id=%d, rating=%d",
				req.ReservationID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, submitReview.ErrDuplicateReview):
			h.logger.Warn("POST /reviews - Duplicate review: reservation_id=%d", req.ReservationID)
			handlers.RespondConflict(w, msgDuplicateReview)

		case errors.Is(err, submitReview.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: reservation_id=%d, error=%v", req.ReservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReviewData)

		default:
			h.logger.Error("POST /reviews - Failed to submit review: reservation_id=%d, error=%v",
				req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, reservation_id=%d",
		result.ID, req.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
