package notifier

import "time"

// Виды событий, публикуемых сервисом
const (
	EventReservationCreated   = "reservation.created"
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationCompleted = "reservation.completed"
	EventReviewCreated        = "review.created"
)

// Event конверт события для диспетчера уведомлений
type Event struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// ReservationPayload полезная нагрузка событий жизненного цикла бронирования
type ReservationPayload struct {
	ReservationID int64  `json:"reservation_id"`
	EquipmentID   int64  `json:"equipment_id"`
	RenterID      int64  `json:"renter_id"`
	Status        string `json:"status"`
}

// ReviewPayload полезная нагрузка события создания отзыва
type ReviewPayload struct {
	ReviewID    int64 `json:"review_id"`
	EquipmentID int64 `json:"equipment_id"`
	AuthorID    int64 `json:"author_id"`
	Rating      int   `json:"rating"`
}
