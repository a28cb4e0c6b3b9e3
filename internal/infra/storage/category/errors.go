package category

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category.repository: category not found")

	// ErrDuplicateCategory возвращается при попытке создать категорию
	// с уже занятым именем (уникальный индекс по lower(name))
	ErrDuplicateCategory = errors.New("category.repository: category with this name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("category.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("category.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("category.repository: failed to scan row")
)
