package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/category"
	"github.com/m04kA/SMC-RentalService/internal/service/categories/models"
)

// Service сервис справочника категорий оборудования
type Service struct {
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(categoryRepo CategoryRepository, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create создает категорию
// Имя уникально без учета регистра; пустая иконка заменяется значением
// по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	s.logger.Info("Create: creating category %q", req.Name)

	if len(req.Name) < domain.MinCategoryNameLength {
		s.logger.Warn("Create: category name %q is too short", req.Name)
		return nil, fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinCategoryNameLength)
	}

	icon := domain.DefaultCategoryIcon
	if req.Icon != nil && *req.Icon != "" {
		icon = *req.Icon
	}

	cat := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        icon,
		IsActive:    true,
	}

	created, err := s.categoryRepo.Create(ctx, cat)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrDuplicateCategory) {
			s.logger.Warn("Create: category %q already exists", req.Name)
			return nil, ErrDuplicateCategory
		}
		s.logger.Error("Create: repository error for category %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: category id=%d created", created.ID)
	return models.FromDomainCategory(created), nil
}

// GetByID получает категорию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CategoryResponse, error) {
	s.logger.Info("GetByID: fetching category id=%d", id)

	cat, err := s.getCategory(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainCategory(cat), nil
}

// List получает все категории
func (s *Service) List(ctx context.Context) (*models.CategoryListResponse, error) {
	s.logger.Info("List: fetching categories")

	list, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d categories", len(list))
	return models.FromDomainCategoryList(list), nil
}

// Update обновляет переданные поля категории
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error) {
	s.logger.Info("Update: updating category id=%d", id)

	cat, err := s.getCategory(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if len(*req.Name) < domain.MinCategoryNameLength {
			s.logger.Warn("Update: category name too short for id=%d", id)
			return nil, fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinCategoryNameLength)
		}
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = req.Description
	}
	if req.Icon != nil && *req.Icon != "" {
		cat.Icon = *req.Icon
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, cat); err != nil {
		if errors.Is(err, categoryRepo.ErrDuplicateCategory) {
			s.logger.Warn("Update: category name %q already taken", cat.Name)
			return nil, ErrDuplicateCategory
		}
		s.logger.Error("Update: repository error for category id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: category id=%d updated", id)
	return models.FromDomainCategory(cat), nil
}

// Delete удаляет категорию
// Оборудование при этом не удаляется, его связь с категорией обнуляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting category id=%d", id)

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("Delete: category id=%d not found", id)
			return ErrCategoryNotFound
		}
		s.logger.Error("Delete: repository error for category id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: category id=%d deleted", id)
	return nil
}

func (s *Service) getCategory(ctx context.Context, method string, id int64) (*domain.Category, error) {
	cat, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("%s: category id=%d not found", method, id)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("%s: repository error for category id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return cat, nil
}
