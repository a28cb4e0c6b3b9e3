package category

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

const table = "categories"

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"name",
	"description",
	"icon",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с категориями оборудования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую категорию
// Уникальность имени (без учета регистра) обеспечивает индекс по
// lower(name); нарушение транслируется в ErrDuplicateCategory
func (r *Repository) Create(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"description",
			"icon",
			"is_active",
		).
		Values(
			cat.Name,
			cat.Description,
			cat.Icon,
			cat.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cat.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time

	return cat, nil
}

// GetByID получает категорию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cat, err := r.scanCategory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan category: %v", ErrScanRow, err)
	}

	return cat, nil
}

// List получает все категории, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCategories(rows)
}

// Update обновляет категорию целиком
func (r *Repository) Update(ctx context.Context, cat *domain.Category) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", cat.Name).
		Set("description", cat.Description).
		Set("icon", cat.Icon).
		Set("is_active", cat.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cat.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicateCategory
		}
		return fmt.Errorf("%w: Update - execute: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete удаляет категорию
// Связь у оборудования обнуляется на уровне схемы (ON DELETE SET NULL)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCategory(row rowScanner) (*domain.Category, error) {
	var cat domain.Category
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Description,
		&cat.Icon,
		&cat.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time

	return &cat, nil
}

func (r *Repository) scanCategories(rows *sql.Rows) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0)

	for rows.Next() {
		cat, err := r.scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}
