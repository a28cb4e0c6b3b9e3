package create_reservation

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	// или снято с публикации
	ErrEquipmentNotFound = errors.New("create_reservation: equipment not found")

	// ErrRenterNotFound возвращается, когда организация-арендатор не существует
	ErrRenterNotFound = errors.New("create_reservation: renter organization not found")

	// ErrBookingConflict возвращается, когда запрошенный диапазон
	// пересекается с существующим блокирующим бронированием
	ErrBookingConflict = errors.New("create_reservation: equipment is already booked for this date range")

	// ErrEquipmentUnavailable возвращается, когда оборудование вручную
	// снято владельцем с рынка (unavailable/under_maintenance)
	ErrEquipmentUnavailable = errors.New("create_reservation: equipment is not available for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
