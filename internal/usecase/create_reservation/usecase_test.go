package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
)

type fakeReservationRepo struct {
	blocking []*domain.Reservation

	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = 101
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) FindBlockingInRange(_ context.Context, _ int64, _ domain.DateRange) ([]*domain.Reservation, error) {
	return f.blocking, nil
}

type fakeEquipmentRepo struct {
	equipment *domain.Equipment
	getErr    error
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, _ int64) (*domain.Equipment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.equipment, nil
}

type fakeAccountClient struct {
	exists bool
}

func (f *fakeAccountClient) Exists(_ context.Context, _ int64) (bool, error) {
	return f.exists, nil
}

type fakeAggregates struct {
	recomputed bool
}

func (f *fakeAggregates) RecomputeAvailability(_ context.Context, _ int64) error {
	f.recomputed = true
	return nil
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Emit(eventKind string, _ interface{}) {
	f.events = append(f.events, eventKind)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(
	resRepo *fakeReservationRepo,
	eqRepo *fakeEquipmentRepo,
	txMgr *fakeTxManager,
) (*UseCase, *fakeAggregates, *fakeNotifier) {
	aggregates := &fakeAggregates{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(resRepo, eqRepo, &fakeAccountClient{exists: true}, aggregates, txMgr, notifier, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc, aggregates, notifier
}

func validRequest() *Request {
	return &Request{
		EquipmentID: 7,
		RenterID:    3,
		StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
}

func availableEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:           7,
		OwnerID:      5,
		DailyRate:    50.0,
		Deposit:      200.0,
		Availability: domain.AvailabilityAvailable,
		IsActive:     true,
	}
}

func TestExecute_Success(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	eqRepo := &fakeEquipmentRepo{equipment: availableEquipment()}
	uc, aggregates, notifier := newTestUseCase(resRepo, eqRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	// 3 дня по 50 плюс залог 200
	assert.Equal(t, 150.0, resp.TotalDue)
	assert.Equal(t, 200.0, resp.DepositAmount)
	assert.True(t, aggregates.recomputed)
	assert.Equal(t, []string{"reservation.created"}, notifier.events)
}

func TestExecute_BookingConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{
		blocking: []*domain.Reservation{
			{ID: 55, Status: domain.StatusPending},
		},
	}
	eqRepo := &fakeEquipmentRepo{equipment: availableEquipment()}
	uc, aggregates, notifier := newTestUseCase(resRepo, eqRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Nil(t, resRepo.created)
	assert.False(t, aggregates.recomputed)
	assert.Empty(t, notifier.events)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	// Срыв сериализуемой транзакции при конкурентной вставке
	txErr := &pq.Error{Code: "40001"}
	resRepo := &fakeReservationRepo{}
	eqRepo := &fakeEquipmentRepo{equipment: availableEquipment()}
	uc, _, _ := newTestUseCase(resRepo, eqRepo, &fakeTxManager{err: txErr})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	eqRepo := &fakeEquipmentRepo{getErr: equipmentRepo.ErrEquipmentNotFound}
	uc, _, _ := newTestUseCase(resRepo, eqRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_DeactivatedEquipment(t *testing.T) {
	eq := availableEquipment()
	eq.IsActive = false
	uc, _, _ := newTestUseCase(&fakeReservationRepo{}, &fakeEquipmentRepo{equipment: eq}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_ManuallyBlockedEquipment(t *testing.T) {
	for _, availability := range []domain.EquipmentAvailability{
		domain.AvailabilityUnavailable, domain.AvailabilityUnderMaintenance,
	} {
		t.Run(string(availability), func(t *testing.T) {
			eq := availableEquipment()
			eq.Availability = availability
			uc, _, _ := newTestUseCase(&fakeReservationRepo{}, &fakeEquipmentRepo{equipment: eq}, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrEquipmentUnavailable)
		})
	}
}

func TestExecute_RenterNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakeReservationRepo{}, &fakeEquipmentRepo{equipment: availableEquipment()}, &fakeTxManager{})
	uc.accountClient = &fakeAccountClient{exists: false}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRenterNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{
			name:   "non-positive equipment id",
			mutate: func(r *Request) { r.EquipmentID = 0 },
		},
		{
			name:   "non-positive renter id",
			mutate: func(r *Request) { r.RenterID = -1 },
		},
		{
			name: "end before start",
			mutate: func(r *Request) {
				r.StartDate, r.EndDate = r.EndDate, r.StartDate
			},
		},
		{
			name: "zero-length range",
			mutate: func(r *Request) {
				r.EndDate = r.StartDate
			},
		},
		{
			name: "start in the past",
			mutate: func(r *Request) {
				r.StartDate = testNow.AddDate(0, 0, -1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase(&fakeReservationRepo{}, &fakeEquipmentRepo{equipment: availableEquipment()}, &fakeTxManager{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
