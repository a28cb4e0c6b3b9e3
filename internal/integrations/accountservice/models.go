package accountservice

// Organization модель организации из AccountService
// Организация может выступать владельцем оборудования, арендатором или обоими
type Organization struct {
	ID          int64   `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от AccountService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
