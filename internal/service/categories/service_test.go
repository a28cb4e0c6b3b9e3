package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/category"
	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeCategoryRepo struct {
	category  *domain.Category
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created *domain.Category
	updated *domain.Category
	deleted bool
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat *domain.Category) (*domain.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = cat
	created := *cat
	created.ID = 1
	return &created, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, _ int64) (*domain.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.category, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	return []*domain.Category{f.category}, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, cat *domain.Category) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = cat
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name:        "Электроинструмент",
		Description: ptr.Ptr("Перфораторы, дрели, шуруповерты"),
		Icon:        ptr.Ptr("🔌"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "🔌", result.Icon)
	assert.True(t, result.IsActive)
}

func TestCreate_DefaultIcon(t *testing.T) {
	// Без иконки категория получает значение по умолчанию
	repo := &fakeCategoryRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name: "Сварочное оборудование",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryIcon, result.Icon)
}

func TestCreate_NameTooShort(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "Э"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.created)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeCategoryRepo{createErr: categoryRepo.ErrDuplicateCategory}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name: "Электроинструмент",
	})

	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeCategoryRepo{getErr: categoryRepo.ErrCategoryNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeCategoryRepo{
		category: &domain.Category{ID: 1, Name: "Электроинструмент", Icon: "🔌", IsActive: true},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Update(context.Background(), 1, &models.UpdateCategoryRequest{
		IsActive: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	// Непереданные поля не затираются
	assert.Equal(t, "Электроинструмент", result.Name)
	assert.Equal(t, "🔌", result.Icon)
}

func TestUpdate_DuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{
		category:  &domain.Category{ID: 1, Name: "Генераторы", Icon: "⚡", IsActive: true},
		updateErr: categoryRepo.ErrDuplicateCategory,
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateCategoryRequest{
		Name: ptr.Ptr("Электроинструмент"),
	})

	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestDelete_Success(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeCategoryRepo{deleteErr: categoryRepo.ErrCategoryNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
