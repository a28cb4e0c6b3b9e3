package submit_review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
)

type fakeReviewRepo struct {
	existing  *domain.Review
	createErr error

	created *domain.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, rev *domain.Review) (*domain.Review, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *rev
	created.ID = 201
	f.created = &created
	return &created, nil
}

func (f *fakeReviewRepo) GetByReservationID(_ context.Context, _ int64) (*domain.Review, error) {
	if f.existing == nil {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return f.existing, nil
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

type fakeAggregates struct {
	recomputed bool
}

func (f *fakeAggregates) RecomputeRating(_ context.Context, _ int64) error {
	f.recomputed = true
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
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

func completedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          10,
		EquipmentID: 7,
		RenterID:    3,
		Status:      domain.StatusCompleted,
	}
}

func validRequest() *Request {
	return &Request{
		ReservationID: 10,
		AuthorID:      3,
		Rating:        5,
	}
}

func newTestUseCase(revRepo *fakeReviewRepo, resRepo *fakeReservationRepo) (*UseCase, *fakeAggregates, *fakeNotifier) {
	aggregates := &fakeAggregates{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(revRepo, resRepo, aggregates, fakeTxManager{}, notifier, nopLogger{})
	return uc, aggregates, notifier
}

func TestExecute_Success(t *testing.T) {
	revRepo := &fakeReviewRepo{}
	resRepo := &fakeReservationRepo{reservation: completedReservation()}
	uc, aggregates, notifier := newTestUseCase(revRepo, resRepo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(201), resp.ID)
	assert.Equal(t, int64(7), resp.EquipmentID)
	assert.Equal(t, 5, resp.Rating)
	assert.True(t, revRepo.created.IsActive)
	assert.True(t, aggregates.recomputed)
	assert.Equal(t, []string{"review.created"}, notifier.events)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc, _, _ := newTestUseCase(&fakeReviewRepo{}, resRepo)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NotAuthorized(t *testing.T) {
	resRepo := &fakeReservationRepo{reservation: completedReservation()}
	uc, _, _ := newTestUseCase(&fakeReviewRepo{}, resRepo)

	req := validRequest()
	req.AuthorID = 999

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestExecute_ReservationNotEligible(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusActive, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := completedReservation()
			res.Status = status
			uc, _, _ := newTestUseCase(&fakeReviewRepo{}, &fakeReservationRepo{reservation: res})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrReservationNotEligible)
		})
	}
}

func TestExecute_InvalidRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		uc, _, _ := newTestUseCase(&fakeReviewRepo{}, &fakeReservationRepo{reservation: completedReservation()})

		req := validRequest()
		req.Rating = rating

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestExecute_DuplicateReview(t *testing.T) {
	revRepo := &fakeReviewRepo{
		existing: &domain.Review{ID: 1, ReservationID: 10},
	}
	uc, aggregates, _ := newTestUseCase(revRepo, &fakeReservationRepo{reservation: completedReservation()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.False(t, aggregates.recomputed)
}

func TestExecute_ConcurrentDuplicateCaughtByConstraint(t *testing.T) {
	// Проверка дубликата прошла, но уникальный индекс отклонил вставку
	revRepo := &fakeReviewRepo{createErr: reviewRepo.ErrDuplicateReview}
	uc, _, notifier := newTestUseCase(revRepo, &fakeReservationRepo{reservation: completedReservation()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.Empty(t, notifier.events)
}

func TestExecute_CheckOrderIsFixed(t *testing.T) {
	// Чужое незавершенное бронирование с некорректной оценкой:
	// первой всегда возвращается ошибка авторства
	res := completedReservation()
	res.Status = domain.StatusPending
	uc, _, _ := newTestUseCase(&fakeReviewRepo{existing: &domain.Review{ID: 1}}, &fakeReservationRepo{reservation: res})

	req := validRequest()
	req.AuthorID = 999
	req.Rating = 42

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotAuthorized)
}
