package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_IsBlocking(t *testing.T) {
	tests := []struct {
		status   ReservationStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusActive, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.expected, r.IsBlocking())
		})
	}
}

func TestReservation_Transitions(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		canConfirm  bool
		canCancel   bool
		canActivate bool
		canComplete bool
		terminal    bool
	}{
		{StatusPending, true, true, false, false, false},
		{StatusConfirmed, false, true, true, false, false},
		{StatusActive, false, true, false, true, false},
		{StatusCompleted, false, false, false, false, true},
		{StatusCancelled, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.canConfirm, r.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, r.CanBeCancelled())
			assert.Equal(t, tt.canActivate, r.CanBeActivated())
			assert.Equal(t, tt.canComplete, r.CanBeCompleted())
			assert.Equal(t, tt.terminal, r.IsTerminal())
		})
	}
}

func TestEquipment_IsManuallyBlocked(t *testing.T) {
	assert.False(t, (&Equipment{Availability: AvailabilityAvailable}).IsManuallyBlocked())
	assert.False(t, (&Equipment{Availability: AvailabilityReserved}).IsManuallyBlocked())
	assert.True(t, (&Equipment{Availability: AvailabilityUnavailable}).IsManuallyBlocked())
	assert.True(t, (&Equipment{Availability: AvailabilityUnderMaintenance}).IsManuallyBlocked())
}

func TestValidReservationStatus(t *testing.T) {
	status, ok := ValidReservationStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ValidReservationStatus("unknown")
	assert.False(t, ok)
}

func TestValidPaymentStatus(t *testing.T) {
	status, ok := ValidPaymentStatus("refunded")
	assert.True(t, ok)
	assert.Equal(t, PaymentRefunded, status)

	_, ok = ValidPaymentStatus("")
	assert.False(t, ok)
}
