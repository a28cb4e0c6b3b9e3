package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "reviews"

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"equipment_id",
	"author_id",
	"reservation_id",
	"rating",
	"comment",
	"owner_response_text",
	"owner_response_at",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
// Уникальный индекс по reservation_id гарантирует "один отзыв на
// резервацию" даже при конкурентных запросах; нарушение транслируется
// в ErrDuplicateReview
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"equipment_id",
			"author_id",
			"reservation_id",
			"rating",
			"comment",
			"is_active",
		).
		Values(
			rev.EquipmentID,
			rev.AuthorID,
			rev.ReservationID,
			rev.Rating,
			rev.Comment,
			rev.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return rev, nil
}

// GetByID получает отзыв по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rev, err := r.scanReview(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	return rev, nil
}

// GetByReservationID получает отзыв по ID резервации
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rev, err := r.scanReview(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan review: %v", ErrScanRow, err)
	}

	return rev, nil
}

// ListByEquipment получает активные отзывы на оборудование
func (r *Repository) ListByEquipment(ctx context.Context, equipmentID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

// AggregateByEquipment агрегирует активные отзывы на оборудование:
// средняя оценка (без округления) и количество
// При отсутствии отзывов возвращает (0, 0)
func (r *Repository) AggregateByEquipment(ctx context.Context, equipmentID int64) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(AVG(rating), 0)",
		"COUNT(*)",
	).
		From(table).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AggregateByEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var average float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&average, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: AggregateByEquipment - scan aggregate: %v", ErrScanRow, err)
	}

	return average, count, nil
}

// DistributionByEquipment подсчитывает количество активных отзывов
// по каждой оценке 1-5
func (r *Repository) DistributionByEquipment(ctx context.Context, equipmentID int64) (map[int]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("rating", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		Where(squirrel.Eq{"is_active": true}).
		GroupBy("rating").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DistributionByEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DistributionByEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	distribution := make(map[int]int, domain.MaxRating)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("%w: DistributionByEquipment - scan row: %v", ErrScanRow, err)
		}
		distribution[rating] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DistributionByEquipment - rows error: %v", ErrScanRow, err)
	}

	return distribution, nil
}

// SetOwnerResponse устанавливает ответ владельца на отзыв
func (r *Repository) SetOwnerResponse(ctx context.Context, id int64, text string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("owner_response_text", text).
		Set("owner_response_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOwnerResponse - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetOwnerResponse", query, args)
}

// Deactivate мягко удаляет отзыв (is_active = false)
// Пересчет рейтинга оборудования выполняет вызывающий сервис
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Deactivate", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReview(row rowScanner) (*domain.Review, error) {
	var rev domain.Review
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rev.ID,
		&rev.EquipmentID,
		&rev.AuthorID,
		&rev.ReservationID,
		&rev.Rating,
		&rev.Comment,
		&rev.OwnerResponseText,
		&rev.OwnerResponseAt,
		&rev.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return &rev, nil
}

func (r *Repository) scanReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		rev, err := r.scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReviews - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
