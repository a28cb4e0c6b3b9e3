package categories

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateCategory возвращается, когда имя категории уже занято
	ErrDuplicateCategory = errors.New("category with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("categories service: internal error")
)
