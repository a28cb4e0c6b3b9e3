package domain

import "time"

// EquipmentAvailability represents the availability flag of an equipment
type EquipmentAvailability string

const (
	AvailabilityAvailable        EquipmentAvailability = "available"
	AvailabilityReserved         EquipmentAvailability = "reserved"
	AvailabilityUnavailable      EquipmentAvailability = "unavailable"
	AvailabilityUnderMaintenance EquipmentAvailability = "under_maintenance"
)

// Equipment represents a rentable resource listed by one owning organization
//
// Availability, RatingAverage and ReviewCount are derived fields: they cache
// aggregate state over the equipment's reservations and reviews and are
// recomputed by the aggregates service, never set directly by request handlers.
type Equipment struct {
	ID          int64
	OwnerID     int64 // организация-владелец (единственный листер)
	CategoryID  *int64
	Name        string
	Description *string

	DailyRate float64
	Deposit   float64

	Availability  EquipmentAvailability
	RatingAverage float64
	ReviewCount   int

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsManuallyBlocked returns true if the owner took the equipment off the
// market by hand; the availability recomputation must not overwrite this
// unless a confirmed/active reservation exists
func (e *Equipment) IsManuallyBlocked() bool {
	return e.Availability == AvailabilityUnavailable ||
		e.Availability == AvailabilityUnderMaintenance
}

// EquipmentFilter фильтр для поиска оборудования
type EquipmentFilter struct {
	OwnerID         *int64
	CategoryID      *int64
	Availability    *EquipmentAvailability
	PriceMin        *float64
	PriceMax        *float64
	IncludeInactive bool
}
