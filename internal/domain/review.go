package domain

import "time"

// Review represents a renter's rating of an equipment, tied to exactly one
// completed reservation
type Review struct {
	ID            int64
	EquipmentID   int64
	AuthorID      int64
	ReservationID int64

	Rating  int
	Comment *string

	OwnerResponseText *string
	OwnerResponseAt   *time.Time

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasOwnerResponse returns true if the equipment owner already replied
func (r *Review) HasOwnerResponse() bool {
	return r.OwnerResponseText != nil
}

// RatingStats агрегированная статистика отзывов по оборудованию
type RatingStats struct {
	RatingAverage float64
	ReviewCount   int
	Distribution  map[int]int // оценка (1-5) -> количество отзывов
}
