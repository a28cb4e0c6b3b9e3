package submit_review

import "time"

// Request модель запроса на создание отзыва
type Request struct {
	ReservationID int64   // ID завершенного бронирования
	AuthorID      int64   // ID организации-автора (арендатор бронирования)
	Rating        int     // Оценка 1-5
	Comment       *string // Текст отзыва (опционально)
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID            int64 // ID созданного отзыва
	EquipmentID   int64 // ID оборудования из бронирования
	AuthorID      int64 // ID автора
	ReservationID int64 // ID бронирования

	Rating  int
	Comment *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
