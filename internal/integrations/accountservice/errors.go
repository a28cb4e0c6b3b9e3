package accountservice

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accountservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accountservice client: invalid response")
)
