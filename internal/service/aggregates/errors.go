package aggregates

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("aggregates: equipment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("aggregates: internal error")
)
