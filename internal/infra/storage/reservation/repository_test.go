package reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func reservationRow(id int64, status domain.ReservationStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(columns).
		AddRow(id, 7, 3, now, now.AddDate(0, 0, 3), string(status), "pending",
			150.0, 200.0, nil, nil, nil, nil, nil, nil, now, now)
}

func TestCreate(t *testing.T) {
	_, mock, repo := newMock(t)
	ctx := context.Background()

	res := &domain.Reservation{
		EquipmentID:   7,
		RenterID:      3,
		StartDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		TotalDue:      150.0,
		DepositAmount: 200.0,
	}

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(res.EquipmentID, res.RenterID, res.StartDate, res.EndDate,
			string(res.Status), string(res.PaymentStatus), res.TotalDue, res.DepositAmount,
			nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(101, time.Now(), time.Now()))

	created, err := repo.Create(ctx, res)

	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestFindBlockingInRange(t *testing.T) {
	_, mock, repo := newMock(t)

	rng := domain.DateRange{
		Start: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}

	rows := reservationRow(1, domain.StatusPending)
	rows.AddRow(int64(2), 7, 4, rng.Start, rng.End, "confirmed", "paid",
		150.0, 200.0, nil, nil, nil, nil, nil, nil, time.Now(), time.Now())

	// Полуоткрытое пересечение: start_date < конец AND end_date > начало
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE equipment_id = \\$1 AND status IN \\(\\$2,\\$3,\\$4\\) AND start_date < \\$5 AND end_date > \\$6").
		WithArgs(int64(7), "pending", "confirmed", "active", rng.End, rng.Start).
		WillReturnRows(rows)

	blocking, err := repo.FindBlockingInRange(context.Background(), 7, rng)

	require.NoError(t, err)
	assert.Len(t, blocking, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountReserving(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reservations WHERE equipment_id = \\$1 AND status IN \\(\\$2,\\$3\\)").
		WithArgs(int64(7), "confirmed", "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountReserving(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetByRenter_WithStatusFilter(t *testing.T) {
	_, mock, repo := newMock(t)

	status := domain.StatusConfirmed
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE renter_id = \\$1 AND status = \\$2").
		WithArgs(int64(3), "confirmed").
		WillReturnRows(reservationRow(1, domain.StatusConfirmed))

	reservations, err := repo.GetByRenter(context.Background(), 3, &status)

	require.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.Equal(t, domain.StatusConfirmed, reservations[0].Status)
}

func TestGetByEquipmentIDs_EmptyList(t *testing.T) {
	_, mock, repo := newMock(t)

	// Пустой парк оборудования не должен порождать запрос
	reservations, err := repo.GetByEquipmentIDs(context.Background(), []int64{}, nil)

	require.NoError(t, err)
	assert.Empty(t, reservations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirm(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reservations SET status = \\$1, confirmed_at = NOW\\(\\), updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs("confirmed", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Confirm(context.Background(), 1)

	assert.NoError(t, err)
}

func TestConfirm_NotFound(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reservations").
		WithArgs("confirmed", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Confirm(context.Background(), 99)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("UPDATE reservations SET status = \\$1, cancellation_reason = \\$2").
		WithArgs("cancelled", "сменились планы", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 1, "сменились планы")

	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	_, mock, repo := newMock(t)

	mock.ExpectExec("DELETE FROM reservations WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
}
