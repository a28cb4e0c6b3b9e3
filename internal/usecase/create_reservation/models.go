package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	EquipmentID int64     // ID оборудования
	RenterID    int64     // ID организации-арендатора
	StartDate   time.Time // Начало аренды (включительно)
	EndDate     time.Time // Конец аренды (исключительно)

	DeliveryAddress   *string // Адрес доставки (опционально)
	Notes             *string // Заметки арендатора (опционально)
	SpecialConditions *string // Особые условия (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	EquipmentID int64     // ID оборудования
	RenterID    int64     // ID арендатора
	StartDate   time.Time // Начало аренды
	EndDate     time.Time // Конец аренды

	Status        string // Статус жизненного цикла
	PaymentStatus string // Статус оплаты

	// Денежный снимок, зафиксированный на момент создания
	TotalDue      float64 // Итоговая сумма аренды
	DepositAmount float64 // Залог

	DeliveryAddress   *string
	Notes             *string
	SpecialConditions *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
