package submit_review

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("submit_review: reservation not found")

	// ErrNotAuthorized возвращается, когда отзыв пишет не арендатор
	// бронирования
	ErrNotAuthorized = errors.New("submit_review: only the renter of the reservation may leave a review")

	// ErrReservationNotEligible возвращается, когда бронирование
	// не завершено: право на отзыв дает только статус completed
	ErrReservationNotEligible = errors.New("submit_review: reservation is not completed")

	// ErrInvalidRating возвращается при оценке вне диапазона 1-5
	ErrInvalidRating = errors.New("submit_review: rating must be between 1 and 5")

	// ErrDuplicateReview возвращается, когда по бронированию уже есть отзыв
	ErrDuplicateReview = errors.New("submit_review: review for this reservation already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_review: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_review: internal error")
)
