package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/category"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeEquipmentRepo struct {
	equipment *domain.Equipment
	getErr    error

	created *domain.Equipment
	updated *domain.Equipment
}

func (f *fakeEquipmentRepo) Create(_ context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	f.created = eq
	created := *eq
	created.ID = 1
	return &created, nil
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, _ int64) (*domain.Equipment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.equipment, nil
}

func (f *fakeEquipmentRepo) List(_ context.Context, _ domain.EquipmentFilter) ([]*domain.Equipment, error) {
	return []*domain.Equipment{f.equipment}, nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, eq *domain.Equipment) error {
	f.updated = eq
	return nil
}

func (f *fakeEquipmentRepo) UpdateAvailability(_ context.Context, _ int64, _ domain.EquipmentAvailability) error {
	return nil
}

func (f *fakeEquipmentRepo) Deactivate(_ context.Context, _ int64) error {
	return nil
}

type fakeReservationRepo struct {
	reserving int
}

func (f *fakeReservationRepo) CountReserving(_ context.Context, _ int64) (int, error) {
	return f.reserving, nil
}

type fakeCategoryRepo struct {
	category *domain.Category
	getErr   error
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, _ int64) (*domain.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.category, nil
}

type fakeAccountClient struct {
	exists bool
}

func (f *fakeAccountClient) Exists(_ context.Context, _ int64) (bool, error) {
	return f.exists, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeEquipmentRepo, categories *fakeCategoryRepo) *Service {
	return NewService(repo, &fakeReservationRepo{}, categories, &fakeAccountClient{exists: true}, fakeTxManager{}, nopLogger{})
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeEquipmentRepo{}
	svc := newTestService(repo, &fakeCategoryRepo{})

	result, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:   3,
		Name:      "Вибротрамбовка",
		DailyRate: 1500,
		Deposit:   5000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, string(domain.AvailabilityAvailable), result.Availability)
	assert.True(t, repo.created.IsActive)
}

func TestCreate_ZeroDailyRate(t *testing.T) {
	// Бесплатная аренда допустима, нулевая ставка не отклоняется
	repo := &fakeEquipmentRepo{}
	svc := newTestService(repo, &fakeCategoryRepo{})

	result, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:   3,
		Name:      "Строительные козлы",
		DailyRate: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.DailyRate)
}

func TestCreate_NegativeDailyRate(t *testing.T) {
	repo := &fakeEquipmentRepo{}
	svc := newTestService(repo, &fakeCategoryRepo{})

	_, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:   3,
		Name:      "Бетономешалка",
		DailyRate: -1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.created)
}

func TestCreate_OwnerNotFound(t *testing.T) {
	repo := &fakeEquipmentRepo{}
	svc := NewService(repo, &fakeReservationRepo{}, &fakeCategoryRepo{}, &fakeAccountClient{exists: false}, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:   99,
		Name:      "Бетономешалка",
		DailyRate: 1200,
	})

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.Nil(t, repo.created)
}

func TestCreate_WithCategory(t *testing.T) {
	repo := &fakeEquipmentRepo{}
	categories := &fakeCategoryRepo{category: &domain.Category{ID: 5, Name: "Электроинструмент"}}
	svc := newTestService(repo, categories)

	result, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:    3,
		CategoryID: ptr.Ptr(int64(5)),
		Name:       "Перфоратор",
		DailyRate:  800,
	})

	require.NoError(t, err)
	require.NotNil(t, result.CategoryID)
	assert.Equal(t, int64(5), *result.CategoryID)
}

func TestCreate_CategoryNotFound(t *testing.T) {
	repo := &fakeEquipmentRepo{}
	categories := &fakeCategoryRepo{getErr: categoryRepo.ErrCategoryNotFound}
	svc := newTestService(repo, categories)

	_, err := svc.Create(context.Background(), &models.CreateEquipmentRequest{
		OwnerID:    3,
		CategoryID: ptr.Ptr(int64(404)),
		Name:       "Перфоратор",
		DailyRate:  800,
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Nil(t, repo.created)
}

func TestUpdate_ZeroDailyRate(t *testing.T) {
	repo := &fakeEquipmentRepo{
		equipment: &domain.Equipment{ID: 1, OwnerID: 3, Name: "Перфоратор", DailyRate: 800},
	}
	svc := newTestService(repo, &fakeCategoryRepo{})

	result, err := svc.Update(context.Background(), 1, &models.UpdateEquipmentRequest{
		OrgID:     3,
		DailyRate: ptr.Ptr(0.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.DailyRate)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 0.0, repo.updated.DailyRate)
}

func TestUpdate_NegativeDailyRate(t *testing.T) {
	repo := &fakeEquipmentRepo{
		equipment: &domain.Equipment{ID: 1, OwnerID: 3, Name: "Перфоратор", DailyRate: 800},
	}
	svc := newTestService(repo, &fakeCategoryRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateEquipmentRequest{
		OrgID:     3,
		DailyRate: ptr.Ptr(-100.0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdate_CategoryNotFound(t *testing.T) {
	repo := &fakeEquipmentRepo{
		equipment: &domain.Equipment{ID: 1, OwnerID: 3, Name: "Перфоратор", DailyRate: 800},
	}
	categories := &fakeCategoryRepo{getErr: categoryRepo.ErrCategoryNotFound}
	svc := newTestService(repo, categories)

	_, err := svc.Update(context.Background(), 1, &models.UpdateEquipmentRequest{
		OrgID:      3,
		CategoryID: ptr.Ptr(int64(404)),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Nil(t, repo.updated)
}

func TestUpdate_AccessDenied(t *testing.T) {
	repo := &fakeEquipmentRepo{
		equipment: &domain.Equipment{ID: 1, OwnerID: 3, Name: "Перфоратор"},
	}
	svc := newTestService(repo, &fakeCategoryRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateEquipmentRequest{
		OrgID: 7,
		Name:  ptr.Ptr("Чужой перфоратор"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestSetAvailability_ReservedIsDerived(t *testing.T) {
	repo := &fakeEquipmentRepo{
		equipment: &domain.Equipment{ID: 1, OwnerID: 3, Availability: domain.AvailabilityAvailable},
	}
	svc := newTestService(repo, &fakeCategoryRepo{})

	err := svc.SetAvailability(context.Background(), 1, &models.SetAvailabilityRequest{
		OrgID:        3,
		Availability: "reserved",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
