package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается при недопустимом переходе
	// жизненного цикла (включая повторную отмену - идемпотентность
	// переходов сознательно отвергается)
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
