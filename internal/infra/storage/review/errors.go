package review

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review.repository: review not found")

	// ErrDuplicateReview возвращается при попытке создать второй отзыв
	// на одну и ту же резервацию (уникальный индекс по reservation_id)
	ErrDuplicateReview = errors.New("review.repository: review already exists for this reservation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
