package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

// Service сервис чтения и модерации отзывов
// Создание отзыва живет в отдельном usecase, так как требует проверки
// права на отзыв по завершенному бронированию
type Service struct {
	reviewRepo    ReviewRepository
	equipmentRepo EquipmentRepository
	aggregates    AggregateMaintainer
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	equipmentRepo EquipmentRepository,
	aggregates AggregateMaintainer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:    reviewRepo,
		equipmentRepo: equipmentRepo,
		aggregates:    aggregates,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает отзыв по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReviewResponse, error) {
	s.logger.Info("GetByID: fetching review id=%d", id)

	rev, err := s.getReview(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReview(rev), nil
}

// ListByEquipment получает активные отзывы по оборудованию вместе с
// агрегированной статистикой (средняя оценка, распределение по оценкам)
func (s *Service) ListByEquipment(ctx context.Context, equipmentID int64) (*models.EquipmentReviewsResponse, error) {
	s.logger.Info("ListByEquipment: fetching reviews for equipment id=%d", equipmentID)

	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("ListByEquipment: equipment id=%d not found", equipmentID)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("ListByEquipment: failed to get equipment id=%d: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: ListByEquipment - get equipment: %v", ErrInternal, err)
	}

	list, err := s.reviewRepo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("ListByEquipment: repository error for equipment id=%d: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: ListByEquipment - list reviews: %v", ErrInternal, err)
	}

	average, count, err := s.reviewRepo.AggregateByEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("ListByEquipment: failed to aggregate reviews for equipment id=%d: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: ListByEquipment - aggregate reviews: %v", ErrInternal, err)
	}

	distribution, err := s.reviewRepo.DistributionByEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("ListByEquipment: failed to get rating distribution for equipment id=%d: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: ListByEquipment - rating distribution: %v", ErrInternal, err)
	}

	stats := domain.RatingStats{
		RatingAverage: math.Round(average*10) / 10,
		ReviewCount:   count,
		Distribution:  distribution,
	}

	s.logger.Info("ListByEquipment: fetched %d reviews for equipment id=%d", len(list), equipmentID)
	return models.FromDomainReviews(list, stats), nil
}

// Respond сохраняет ответ владельца оборудования на отзыв
// Доступно только организации-владельцу оборудования, один раз
func (s *Service) Respond(ctx context.Context, id int64, req *models.RespondToReviewRequest) error {
	s.logger.Info("Respond: responding to review id=%d by org=%d", id, req.OrgID)

	if req.Text == "" {
		s.logger.Warn("Respond: empty response text for review id=%d", id)
		return fmt.Errorf("%w: response text is required", ErrInvalidInput)
	}
	if len(req.Text) > domain.MaxCommentLength {
		s.logger.Warn("Respond: response text too long for review id=%d", id)
		return fmt.Errorf("%w: response text exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		rev, err := s.getReview(txCtx, "Respond", id)
		if err != nil {
			return err
		}

		eq, err := s.equipmentRepo.GetByID(txCtx, rev.EquipmentID)
		if err != nil {
			s.logger.Error("Respond: failed to get equipment id=%d: %v", rev.EquipmentID, err)
			return fmt.Errorf("%w: Respond - get equipment: %v", ErrInternal, err)
		}
		if eq.OwnerID != req.OrgID {
			s.logger.Warn("Respond: org=%d is not the owner of equipment id=%d", req.OrgID, eq.ID)
			return ErrAccessDenied
		}

		if rev.HasOwnerResponse() {
			s.logger.Warn("Respond: review id=%d already has an owner response", id)
			return fmt.Errorf("%w: review already has an owner response", ErrInvalidInput)
		}

		if err := s.reviewRepo.SetOwnerResponse(txCtx, id, req.Text); err != nil {
			s.logger.Error("Respond: repository error for review id=%d: %v", id, err)
			return fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Respond: owner response saved for review id=%d", id)
	return nil
}

// Delete деактивирует отзыв (soft delete) и пересчитывает рейтинг
// оборудования в той же транзакции. Доступно только автору отзыва.
func (s *Service) Delete(ctx context.Context, id int64, req *models.DeleteReviewRequest) error {
	s.logger.Info("Delete: deactivating review id=%d by org=%d", id, req.OrgID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		rev, err := s.getReview(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if rev.AuthorID != req.OrgID {
			s.logger.Warn("Delete: org=%d is not the author of review id=%d", req.OrgID, id)
			return ErrAccessDenied
		}

		if err := s.reviewRepo.Deactivate(txCtx, id); err != nil {
			s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.aggregates.RecomputeRating(txCtx, rev.EquipmentID); err != nil {
			s.logger.Error("Delete: failed to recompute rating for equipment id=%d: %v", rev.EquipmentID, err)
			return fmt.Errorf("%w: Delete - recompute rating: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: review id=%d deactivated", id)
	return nil
}

func (s *Service) getReview(ctx context.Context, method string, id int64) (*domain.Review, error) {
	rev, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("%s: review id=%d not found", method, id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("%s: repository error for review id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return rev, nil
}
