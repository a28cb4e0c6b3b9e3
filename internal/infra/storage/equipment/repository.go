package equipment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "equipment"

var columns = []string{
	"id",
	"owner_id",
	"category_id",
	"name",
	"description",
	"daily_rate",
	"deposit",
	"availability",
	"rating_average",
	"review_count",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с оборудованием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оборудования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись об оборудовании
func (r *Repository) Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"owner_id",
			"category_id",
			"name",
			"description",
			"daily_rate",
			"deposit",
			"availability",
			"is_active",
		).
		Values(
			eq.OwnerID,
			eq.CategoryID,
			eq.Name,
			eq.Description,
			eq.DailyRate,
			eq.Deposit,
			eq.Availability,
			eq.IsActive,
		).
		Suffix("RETURNING id, rating_average, review_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&eq.ID,
		&eq.RatingAverage,
		&eq.ReviewCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	eq.CreatedAt = createdAt.Time
	eq.UpdatedAt = updatedAt.Time

	return eq, nil
}

// GetByID получает оборудование по ID
// В транзакции строка блокируется через FOR UPDATE: пересчет производных
// полей выполняется по схеме читай-агрегируй-пиши и должен быть
// атомарным в рамках одного оборудования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	eq, err := r.scanEquipment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan equipment: %v", ErrScanRow, err)
	}

	return eq, nil
}

// List получает список оборудования с фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.CategoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Availability != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"availability": *filter.Availability})
	}
	if filter.PriceMin != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"daily_rate": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"daily_rate": *filter.PriceMax})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEquipmentList(rows)
}

// GetIDsByOwner получает идентификаторы всего оборудования владельца
// Используется для выборки бронирований по парку владельца
func (r *Repository) GetIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetIDsByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIDsByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetIDsByOwner - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetIDsByOwner - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// Update обновляет редактируемые владельцем поля
// Производные поля (availability, rating_average, review_count) здесь
// не трогаются - их обновляет только сервис агрегатов
func (r *Repository) Update(ctx context.Context, eq *domain.Equipment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("category_id", eq.CategoryID).
		Set("name", eq.Name).
		Set("description", eq.Description).
		Set("daily_rate", eq.DailyRate).
		Set("deposit", eq.Deposit).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": eq.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Update", query, args)
}

// UpdateAvailability обновляет флаг доступности
func (r *Repository) UpdateAvailability(ctx context.Context, id int64, availability domain.EquipmentAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("availability", availability).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateAvailability", query, args)
}

// UpdateRating обновляет средний рейтинг и количество отзывов
func (r *Repository) UpdateRating(ctx context.Context, id int64, ratingAverage float64, reviewCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("rating_average", ratingAverage).
		Set("review_count", reviewCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateRating", query, args)
}

// Deactivate мягко удаляет оборудование (is_active = false)
// Запись сохраняется, пока на неё ссылаются бронирования
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
		return ErrEquipmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var eq domain.Equipment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&eq.ID,
		&eq.OwnerID,
		&eq.CategoryID,
		&eq.Name,
		&eq.Description,
		&eq.DailyRate,
		&eq.Deposit,
		&eq.Availability,
		&eq.RatingAverage,
		&eq.ReviewCount,
		&eq.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	eq.CreatedAt = createdAt.Time
	eq.UpdatedAt = updatedAt.Time

	return &eq, nil
}

func (r *Repository) scanEquipmentList(rows *sql.Rows) ([]*domain.Equipment, error) {
	equipmentList := make([]*domain.Equipment, 0)

	for rows.Next() {
		eq, err := r.scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEquipmentList - scan row: %v", ErrScanRow, err)
		}
		equipmentList = append(equipmentList, eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEquipmentList - rows error: %v", ErrScanRow, err)
	}

	return equipmentList, nil
}
