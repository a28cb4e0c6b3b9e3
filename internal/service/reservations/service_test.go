package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	confirmed       bool
	cancelledReason *string
	updatedStatus   *domain.ReservationStatus
	updatedPayment  *domain.PaymentStatus
	deleted         bool
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) GetByRenter(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) GetByEquipmentIDs(_ context.Context, _ []int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) Confirm(_ context.Context, _ int64) error {
	f.confirmed = true
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelledReason = &reason
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeReservationRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.updatedPayment = &status
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

type fakeEquipmentRepo struct {
	ids []int64
}

func (f *fakeEquipmentRepo) GetIDsByOwner(_ context.Context, _ int64) ([]int64, error) {
	return f.ids, nil
}

type fakeAggregates struct {
	recomputedEquipmentID *int64
	err                   error
}

func (f *fakeAggregates) RecomputeAvailability(_ context.Context, equipmentID int64) error {
	if f.err != nil {
		return f.err
	}
	f.recomputedEquipmentID = &equipmentID
	return nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Emit(eventKind string, _ interface{}) {
	f.events = append(f.events, eventKind)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeReservationRepo) (*Service, *fakeAggregates, *fakeNotifier) {
	aggregates := &fakeAggregates{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeEquipmentRepo{}, aggregates, fakeTxManager{}, notifier, nopLogger{})
	return svc, aggregates, notifier
}

func TestConfirm_Success(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, RenterID: 3, Status: domain.StatusPending},
	}
	svc, aggregates, notifier := newTestService(repo)

	err := svc.Confirm(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.confirmed)
	require.NotNil(t, aggregates.recomputedEquipmentID)
	assert.Equal(t, int64(7), *aggregates.recomputedEquipmentID)
	assert.Equal(t, []string{"reservation.confirmed"}, notifier.events)
}

func TestConfirm_InvalidTransition(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusConfirmed, domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeReservationRepo{
				reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: status},
			}
			svc, aggregates, notifier := newTestService(repo)

			err := svc.Confirm(context.Background(), 1)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.False(t, repo.confirmed)
			assert.Nil(t, aggregates.recomputedEquipmentID)
			assert.Empty(t, notifier.events)
		})
	}
}

func TestConfirm_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc, _, _ := newTestService(repo)

	err := svc.Confirm(context.Background(), 99)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: domain.StatusConfirmed},
	}
	svc, aggregates, notifier := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		OrgID:              3,
		CancellationReason: "сменились планы",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.cancelledReason)
	assert.Equal(t, "сменились планы", *repo.cancelledReason)
	require.NotNil(t, aggregates.recomputedEquipmentID)
	assert.Equal(t, []string{"reservation.cancelled"}, notifier.events)
}

func TestCancel_RequiresReason(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, Status: domain.StatusPending},
	}
	svc, _, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{OrgID: 3})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.cancelledReason)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	// Повторная отмена - ошибка, не no-op
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, Status: domain.StatusCancelled},
	}
	svc, _, notifier := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		OrgID:              3,
		CancellationReason: "повтор",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, notifier.events)
}

func TestActivate_OnlyFromConfirmed(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: domain.StatusConfirmed},
	}
	svc, _, _ := newTestService(repo)

	err := svc.Activate(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusActive, *repo.updatedStatus)

	repo.reservation.Status = domain.StatusPending
	repo.updatedStatus = nil
	err = svc.Activate(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, repo.updatedStatus)
}

func TestComplete_OnlyFromActive(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: domain.StatusActive},
	}
	svc, _, notifier := newTestService(repo)

	err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
	assert.Equal(t, []string{"reservation.completed"}, notifier.events)

	repo.reservation.Status = domain.StatusConfirmed
	repo.updatedStatus = nil
	err = svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdatePaymentStatus(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, Status: domain.StatusConfirmed},
	}
	svc, aggregates, _ := newTestService(repo)

	err := svc.UpdatePaymentStatus(context.Background(), 1, &models.UpdatePaymentStatusRequest{
		OrgID:         3,
		PaymentStatus: "paid",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updatedPayment)
	assert.Equal(t, domain.PaymentPaid, *repo.updatedPayment)
	// Статус оплаты ортогонален жизненному циклу
	assert.Nil(t, aggregates.recomputedEquipmentID)
}

func TestUpdatePaymentStatus_InvalidValue(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc, _, _ := newTestService(repo)

	err := svc.UpdatePaymentStatus(context.Background(), 1, &models.UpdatePaymentStatusRequest{
		OrgID:         3,
		PaymentStatus: "settled",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_OnlyTerminal(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusActive,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeReservationRepo{
				reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: status},
			}
			svc, _, _ := newTestService(repo)

			err := svc.Delete(context.Background(), 1)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.False(t, repo.deleted)
		})
	}

	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: domain.StatusCancelled},
	}
	svc, aggregates, _ := newTestService(repo)

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
	require.NotNil(t, aggregates.recomputedEquipmentID)
}

func TestConfirm_AggregateFailureAbortsTransition(t *testing.T) {
	repo := &fakeReservationRepo{
		reservation: &domain.Reservation{ID: 1, EquipmentID: 7, Status: domain.StatusPending},
	}
	aggregates := &fakeAggregates{err: errors.New("recompute failed")}
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeEquipmentRepo{}, aggregates, fakeTxManager{}, notifier, nopLogger{})

	err := svc.Confirm(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
	// Уведомление не отправляется при откате
	assert.Empty(t, notifier.events)
}
