package equipment

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrOwnerNotFound возвращается, когда организация-владелец не существует
	ErrOwnerNotFound = errors.New("owner organization not found")

	// ErrCategoryNotFound возвращается, когда указанная категория не существует
	ErrCategoryNotFound = errors.New("category not found")

	// ErrAccessDenied возвращается, когда организация не владеет оборудованием
	ErrAccessDenied = errors.New("access denied: organization does not own this equipment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("equipment service: internal error")
)
