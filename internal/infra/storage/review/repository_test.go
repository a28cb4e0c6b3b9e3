package review

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db, mock, NewRepository(db)
}

func newReview() *domain.Review {
	comment := "отличный экскаватор"
	return &domain.Review{
		EquipmentID:   7,
		AuthorID:      3,
		ReservationID: 10,
		Rating:        5,
		Comment:       &comment,
		IsActive:      true,
	}
}

func TestCreate(t *testing.T) {
	_, mock, repo := newMock(t)

	rev := newReview()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(rev.EquipmentID, rev.AuthorID, rev.ReservationID, rev.Rating, *rev.Comment, rev.IsActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(201, time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), rev)

	require.NoError(t, err)
	assert.Equal(t, int64(201), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	// Конкурентная вставка второго отзыва на ту же резервацию
	// отбивается уникальным индексом
	_, mock, repo := newMock(t)

	rev := newReview()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(rev.EquipmentID, rev.AuthorID, rev.ReservationID, rev.Rating, *rev.Comment, rev.IsActive).
		WillReturnError(&pq.Error{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), rev)

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestGetByReservationID_NotFound(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE reservation_id = \\$1").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByReservationID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestListByEquipment(t *testing.T) {
	_, mock, repo := newMock(t)

	now := time.Now()
	rows := sqlmock.NewRows(columns).
		AddRow(1, 7, 3, 10, 5, "отлично", nil, nil, true, now, now).
		AddRow(2, 7, 4, 11, 4, nil, "спасибо", now, true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE equipment_id = \\$1 AND is_active = \\$2").
		WithArgs(int64(7), true).
		WillReturnRows(rows)

	reviews, err := repo.ListByEquipment(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.True(t, reviews[1].HasOwnerResponse())
}

func TestAggregateByEquipment(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\) FROM reviews WHERE equipment_id = \\$1 AND is_active = \\$2").
		WithArgs(int64(7), true).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.166666, 3))

	average, count, err := repo.AggregateByEquipment(context.Background(), 7)

	require.NoError(t, err)
	assert.InDelta(t, 4.166666, average, 0.000001)
	assert.Equal(t, 3, count)
}

func TestAggregateByEquipment_NoReviews(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\) FROM reviews").
		WithArgs(int64(7), true).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0))

	average, count, err := repo.AggregateByEquipment(context.Background(), 7)

	require.NoError(t, err)
	assert.Zero(t, average)
	assert.Zero(t, count)
}

func TestDistributionByEquipment(t *testing.T) {
	_, mock, repo := newMock(t)

	rows := sqlmock.NewRows([]string{"rating", "count"}).
		AddRow(5, 2).
		AddRow(3, 1)

	mock.ExpectQuery("SELECT rating, COUNT\\(\\*\\) FROM reviews WHERE equipment_id = \\$1 AND is_active = \\$2 GROUP BY rating").
		WithArgs(int64(7), true).
		WillReturnRows(rows)

	distribution, err := repo.DistributionByEquipment(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 2, 3: 1}, distribution)
}

func TestSetOwnerResponse_NotFound(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reviews SET owner_response_text = \\$1").
		WithArgs("спасибо за отзыв", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOwnerResponse(context.Background(), 99, "спасибо за отзыв")

	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestDeactivate(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reviews SET is_active = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs(false, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), 1)

	assert.NoError(t, err)
}
