package aggregates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
)

type fakeEquipmentRepo struct {
	equipment *domain.Equipment
	getErr    error

	updatedAvailability *domain.EquipmentAvailability
	updatedRating       *float64
	updatedCount        *int
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, _ int64) (*domain.Equipment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.equipment, nil
}

func (f *fakeEquipmentRepo) UpdateAvailability(_ context.Context, _ int64, availability domain.EquipmentAvailability) error {
	f.updatedAvailability = &availability
	return nil
}

func (f *fakeEquipmentRepo) UpdateRating(_ context.Context, _ int64, rating float64, count int) error {
	f.updatedRating = &rating
	f.updatedCount = &count
	return nil
}

type fakeReservationRepo struct {
	reservingCount int
}

func (f *fakeReservationRepo) CountReserving(_ context.Context, _ int64) (int, error) {
	return f.reservingCount, nil
}

type fakeReviewRepo struct {
	average float64
	count   int
}

func (f *fakeReviewRepo) AggregateByEquipment(_ context.Context, _ int64) (float64, int, error) {
	return f.average, f.count, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRecomputeAvailability(t *testing.T) {
	tests := []struct {
		name           string
		current        domain.EquipmentAvailability
		reservingCount int
		expectedWrite  *domain.EquipmentAvailability
	}{
		{
			name:           "available becomes reserved when reserving reservations exist",
			current:        domain.AvailabilityAvailable,
			reservingCount: 1,
			expectedWrite:  availabilityPtr(domain.AvailabilityReserved),
		},
		{
			name:           "reserved reverts to available when none remain",
			current:        domain.AvailabilityReserved,
			reservingCount: 0,
			expectedWrite:  availabilityPtr(domain.AvailabilityAvailable),
		},
		{
			name:           "available stays available, no write",
			current:        domain.AvailabilityAvailable,
			reservingCount: 0,
			expectedWrite:  nil,
		},
		{
			name:           "reserved stays reserved, no write",
			current:        domain.AvailabilityReserved,
			reservingCount: 2,
			expectedWrite:  nil,
		},
		{
			name:           "manual unavailable is preserved",
			current:        domain.AvailabilityUnavailable,
			reservingCount: 0,
			expectedWrite:  nil,
		},
		{
			name:           "manual under_maintenance is preserved",
			current:        domain.AvailabilityUnderMaintenance,
			reservingCount: 0,
			expectedWrite:  nil,
		},
		{
			name:           "reserved wins over manual unavailable",
			current:        domain.AvailabilityUnavailable,
			reservingCount: 1,
			expectedWrite:  availabilityPtr(domain.AvailabilityReserved),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eqRepo := &fakeEquipmentRepo{
				equipment: &domain.Equipment{ID: 1, Availability: tt.current},
			}
			resRepo := &fakeReservationRepo{reservingCount: tt.reservingCount}

			svc := NewService(eqRepo, resRepo, &fakeReviewRepo{}, nopLogger{})

			err := svc.RecomputeAvailability(context.Background(), 1)
			require.NoError(t, err)

			if tt.expectedWrite == nil {
				assert.Nil(t, eqRepo.updatedAvailability)
			} else {
				require.NotNil(t, eqRepo.updatedAvailability)
				assert.Equal(t, *tt.expectedWrite, *eqRepo.updatedAvailability)
			}
		})
	}
}

func TestRecomputeAvailability_EquipmentNotFound(t *testing.T) {
	eqRepo := &fakeEquipmentRepo{getErr: equipmentRepo.ErrEquipmentNotFound}

	svc := NewService(eqRepo, &fakeReservationRepo{}, &fakeReviewRepo{}, nopLogger{})

	err := svc.RecomputeAvailability(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestRecomputeRating(t *testing.T) {
	tests := []struct {
		name           string
		average        float64
		count          int
		expectedRating float64
		expectedCount  int
	}{
		{
			name:           "ratings 5 4 3 average to 4.0",
			average:        4.0,
			count:          3,
			expectedRating: 4.0,
			expectedCount:  3,
		},
		{
			name:           "average rounds to one decimal",
			average:        4.166666,
			count:          3,
			expectedRating: 4.2,
			expectedCount:  3,
		},
		{
			name:           "removal leaves 4.5 over two reviews",
			average:        4.5,
			count:          2,
			expectedRating: 4.5,
			expectedCount:  2,
		},
		{
			name:           "no reviews resets to zero",
			average:        0,
			count:          0,
			expectedRating: 0,
			expectedCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eqRepo := &fakeEquipmentRepo{equipment: &domain.Equipment{ID: 1}}
			revRepo := &fakeReviewRepo{average: tt.average, count: tt.count}

			svc := NewService(eqRepo, &fakeReservationRepo{}, revRepo, nopLogger{})

			err := svc.RecomputeRating(context.Background(), 1)
			require.NoError(t, err)

			require.NotNil(t, eqRepo.updatedRating)
			assert.Equal(t, tt.expectedRating, *eqRepo.updatedRating)
			assert.Equal(t, tt.expectedCount, *eqRepo.updatedCount)
		})
	}
}

func availabilityPtr(a domain.EquipmentAvailability) *domain.EquipmentAvailability {
	return &a
}
