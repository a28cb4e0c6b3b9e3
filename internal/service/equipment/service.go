package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/category"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

// Service сервис каталога оборудования
type Service struct {
	equipmentRepo   EquipmentRepository
	reservationRepo ReservationRepository
	categoryRepo    CategoryRepository
	accountClient   AccountClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса оборудования
func NewService(
	equipmentRepo EquipmentRepository,
	reservationRepo ReservationRepository,
	categoryRepo CategoryRepository,
	accountClient AccountClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		categoryRepo:    categoryRepo,
		accountClient:   accountClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает оборудование
// Владелец должен существовать в AccountService
func (s *Service) Create(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Create: creating equipment %q for owner=%d", req.Name, req.OwnerID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request for owner=%d: %v", req.OwnerID, err)
		return nil, err
	}

	exists, err := s.accountClient.Exists(ctx, req.OwnerID)
	if err != nil {
		s.logger.Error("Create: failed to check owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - check owner: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Create: owner organization id=%d not found", req.OwnerID)
		return nil, ErrOwnerNotFound
	}

	if err := s.checkCategory(ctx, "Create", req.CategoryID); err != nil {
		return nil, err
	}

	eq := &domain.Equipment{
		OwnerID:      req.OwnerID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		DailyRate:    req.DailyRate,
		Deposit:      req.Deposit,
		Availability: domain.AvailabilityAvailable,
		IsActive:     true,
	}

	created, err := s.equipmentRepo.Create(ctx, eq)
	if err != nil {
		s.logger.Error("Create: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: equipment id=%d created for owner=%d", created.ID, created.OwnerID)
	return models.FromDomainEquipment(created), nil
}

// GetByID получает оборудование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	s.logger.Info("GetByID: fetching equipment id=%d", id)

	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("GetByID: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetByID: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(eq), nil
}

// List получает список оборудования по фильтрам
// Деактивированное оборудование из публичной выдачи исключается
func (s *Service) List(ctx context.Context, req *models.ListEquipmentRequest) (*models.EquipmentListResponse, error) {
	s.logger.Info("List: fetching equipment list")

	filter := domain.EquipmentFilter{
		OwnerID:    req.OwnerID,
		CategoryID: req.CategoryID,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
	}

	if req.Availability != nil {
		availability, ok := domain.ValidAvailability(*req.Availability)
		if !ok {
			s.logger.Warn("List: invalid availability filter %q", *req.Availability)
			return nil, fmt.Errorf("%w: invalid availability filter", ErrInvalidInput)
		}
		filter.Availability = &availability
	}

	list, err := s.equipmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d equipment items", len(list))
	return models.FromDomainEquipmentList(list), nil
}

// Update обновляет редактируемые владельцем поля оборудования
// Доступно только организации-владельцу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Update: updating equipment id=%d by org=%d", id, req.OrgID)

	var updated *domain.Equipment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		eq, err := s.getOwned(txCtx, "Update", id, req.OrgID)
		if err != nil {
			return err
		}

		if req.CategoryID != nil {
			if err := s.checkCategory(txCtx, "Update", req.CategoryID); err != nil {
				return err
			}
			eq.CategoryID = req.CategoryID
		}
		if req.Name != nil {
			if len(*req.Name) < domain.MinEquipmentNameLength {
				s.logger.Warn("Update: equipment name too short for id=%d", id)
				return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinEquipmentNameLength)
			}
			eq.Name = *req.Name
		}
		if req.Description != nil {
			eq.Description = req.Description
		}
		if req.DailyRate != nil {
			if *req.DailyRate < 0 {
				s.logger.Warn("Update: negative daily rate for equipment id=%d", id)
				return fmt.Errorf("%w: daily rate must not be negative", ErrInvalidInput)
			}
			eq.DailyRate = *req.DailyRate
		}
		if req.Deposit != nil {
			if *req.Deposit < 0 {
				s.logger.Warn("Update: negative deposit for equipment id=%d", id)
				return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
			}
			eq.Deposit = *req.Deposit
		}

		if err := s.equipmentRepo.Update(txCtx, eq); err != nil {
			s.logger.Error("Update: repository error for equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = eq
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: equipment id=%d updated", id)
	return models.FromDomainEquipment(updated), nil
}

// SetAvailability вручную устанавливает флаг доступности
// Владелец может выставить available/unavailable/under_maintenance;
// значение reserved производное и вручную не назначается. Снять
// reserved при живых confirmed/active бронированиях тоже нельзя.
func (s *Service) SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) error {
	s.logger.Info("SetAvailability: equipment id=%d -> %s by org=%d", id, req.Availability, req.OrgID)

	availability, ok := domain.ValidAvailability(req.Availability)
	if !ok {
		s.logger.Warn("SetAvailability: invalid availability %q for equipment id=%d", req.Availability, id)
		return fmt.Errorf("%w: invalid availability value", ErrInvalidInput)
	}
	if availability == domain.AvailabilityReserved {
		s.logger.Warn("SetAvailability: attempt to set derived value reserved for equipment id=%d", id)
		return fmt.Errorf("%w: availability 'reserved' is derived and cannot be set manually", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		eq, err := s.getOwned(txCtx, "SetAvailability", id, req.OrgID)
		if err != nil {
			return err
		}

		if eq.Availability == domain.AvailabilityReserved {
			reserving, err := s.reservationRepo.CountReserving(txCtx, id)
			if err != nil {
				s.logger.Error("SetAvailability: failed to count reservations for equipment id=%d: %v", id, err)
				return fmt.Errorf("%w: SetAvailability - count reservations: %v", ErrInternal, err)
			}
			if reserving > 0 {
				s.logger.Warn("SetAvailability: equipment id=%d has %d reserving bookings, refusing manual override", id, reserving)
				return fmt.Errorf("%w: equipment is reserved by active bookings", ErrInvalidInput)
			}
		}

		if err := s.equipmentRepo.UpdateAvailability(txCtx, id, availability); err != nil {
			s.logger.Error("SetAvailability: repository error for equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("SetAvailability: equipment id=%d availability set to %s", id, availability)
	return nil
}

// Deactivate снимает оборудование с публикации (soft delete)
// Доступно только организации-владельцу
func (s *Service) Deactivate(ctx context.Context, id int64, orgID int64) error {
	s.logger.Info("Deactivate: deactivating equipment id=%d by org=%d", id, orgID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getOwned(txCtx, "Deactivate", id, orgID); err != nil {
			return err
		}

		if err := s.equipmentRepo.Deactivate(txCtx, id); err != nil {
			s.logger.Error("Deactivate: repository error for equipment id=%d: %v", id, err)
			return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Deactivate: equipment id=%d deactivated", id)
	return nil
}

// checkCategory проверяет, что указанная категория существует
// nil означает "без категории" и проверки не требует
func (s *Service) checkCategory(ctx context.Context, method string, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("%s: category id=%d not found", method, *categoryID)
			return ErrCategoryNotFound
		}
		s.logger.Error("%s: failed to check category id=%d: %v", method, *categoryID, err)
		return fmt.Errorf("%w: %s - check category: %v", ErrInternal, method, err)
	}

	return nil
}

// getOwned читает оборудование и проверяет право собственности организации
func (s *Service) getOwned(ctx context.Context, method string, id, orgID int64) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("%s: equipment id=%d not found", method, id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("%s: repository error for equipment id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if eq.OwnerID != orgID {
		s.logger.Warn("%s: org=%d is not the owner of equipment id=%d (owner=%d)", method, orgID, id, eq.OwnerID)
		return nil, ErrAccessDenied
	}

	return eq, nil
}

func validateCreateRequest(req *models.CreateEquipmentRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: owner ID must be positive", ErrInvalidInput)
	}
	if len(req.Name) < domain.MinEquipmentNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinEquipmentNameLength)
	}
	if req.DailyRate < 0 {
		return fmt.Errorf("%w: daily rate must not be negative", ErrInvalidInput)
	}
	if req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}
	return nil
}
