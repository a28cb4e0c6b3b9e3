package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusActive    ReservationStatus = "active"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// PaymentStatus represents the payment state of a reservation,
// orthogonal to the lifecycle status
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentPartial  PaymentStatus = "partial"
)

// Reservation represents a claim on an equipment's availability for a
// half-open date range [StartDate, EndDate), owned by a renter organization
type Reservation struct {
	ID          int64
	EquipmentID int64
	RenterID    int64

	StartDate time.Time
	EndDate   time.Time

	Status        ReservationStatus
	PaymentStatus PaymentStatus

	// Денормализованный денежный снимок: фиксируется при создании,
	// не пересчитывается при последующих изменениях тарифа оборудования
	TotalDue      float64
	DepositAmount float64

	DeliveryAddress   *string
	Notes             *string
	SpecialConditions *string

	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the reservation's date range
func (r *Reservation) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// IsBlocking returns true if the reservation occupies its time range for
// conflict purposes (pending requests hold the slot)
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed || r.Status == StatusActive
}

// IsTerminal returns true if no further lifecycle transition is legal
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// CanBeConfirmed returns true if the confirm transition is legal
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the cancel transition is legal
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed || r.Status == StatusActive
}

// CanBeActivated returns true if the reservation may be moved to active
func (r *Reservation) CanBeActivated() bool {
	return r.Status == StatusConfirmed
}

// CanBeCompleted returns true if the complete transition is legal
func (r *Reservation) CanBeCompleted() bool {
	return r.Status == StatusActive
}
