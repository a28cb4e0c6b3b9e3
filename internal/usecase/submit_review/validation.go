package submit_review

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Оценка здесь не проверяется: порядок проверок фиксирован, и оценка
// валидируется после проверки прав на бронирование
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.AuthorID <= 0 {
		return fmt.Errorf("%w: authorID must be positive", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateRating проверяет диапазон оценки
func validateRating(rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return ErrInvalidRating
	}
	return nil
}
