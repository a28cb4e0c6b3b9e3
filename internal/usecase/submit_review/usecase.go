package submit_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
)

// UseCase use case для создания отзыва по завершенному бронированию
//
// Право на отзыв проверяется в фиксированном порядке: существование
// бронирования, авторство, завершенность, диапазон оценки, отсутствие
// дубликата. Клиент с несколькими нарушениями всегда получает одну и
// ту же первую ошибку.
type UseCase struct {
	reviewRepo      ReviewRepository
	reservationRepo ReservationRepository
	aggregates      AggregateMaintainer
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reviewRepo ReviewRepository,
	reservationRepo ReservationRepository,
	aggregates AggregateMaintainer,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reviewRepo:      reviewRepo,
		reservationRepo: reservationRepo,
		aggregates:      aggregates,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case создания отзыва
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReview: reservation=%d, author=%d, rating=%d",
		req.ReservationID, req.AuthorID, req.Rating)

	// 1. Валидация входных данных (кроме оценки, см. порядок проверок)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReview: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Review

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Бронирование должно существовать
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("SubmitReview: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("SubmitReview: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Отзыв оставляет только арендатор бронирования
		if res.RenterID != req.AuthorID {
			uc.logger.Warn("SubmitReview: author=%d is not the renter of reservation id=%d", req.AuthorID, req.ReservationID)
			return ErrNotAuthorized
		}

		// 4. Право на отзыв дает только завершенное бронирование
		if res.Status != domain.StatusCompleted {
			uc.logger.Warn("SubmitReview: reservation id=%d is not completed (status=%s)", req.ReservationID, res.Status)
			return ErrReservationNotEligible
		}

		// 5. Диапазон оценки
		if err := validateRating(req.Rating); err != nil {
			uc.logger.Warn("SubmitReview: invalid rating=%d for reservation id=%d", req.Rating, req.ReservationID)
			return err
		}

		// 6. Одно бронирование - один отзыв
		if _, err := uc.reviewRepo.GetByReservationID(txCtx, req.ReservationID); err == nil {
			uc.logger.Warn("SubmitReview: review for reservation id=%d already exists", req.ReservationID)
			return ErrDuplicateReview
		} else if !errors.Is(err, reviewRepo.ErrReviewNotFound) {
			uc.logger.Error("SubmitReview: failed to check existing review: %v", err)
			return fmt.Errorf("%w: failed to check existing review: %v", ErrInternal, err)
		}

		review := &domain.Review{
			EquipmentID:   res.EquipmentID,
			AuthorID:      req.AuthorID,
			ReservationID: req.ReservationID,
			Rating:        req.Rating,
			Comment:       req.Comment,
			IsActive:      true,
		}

		created, err := uc.reviewRepo.Create(txCtx, review)
		if err != nil {
			// Уникальный индекс по reservation_id подстраховывает
			// проверку выше при конкурентной отправке
			if errors.Is(err, reviewRepo.ErrDuplicateReview) {
				uc.logger.Warn("SubmitReview: concurrent duplicate review for reservation id=%d", req.ReservationID)
				return ErrDuplicateReview
			}
			uc.logger.Error("SubmitReview: failed to create review: %v", err)
			return fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
		}

		// 7. Пересчитываем рейтинг оборудования в той же транзакции
		if err := uc.aggregates.RecomputeRating(txCtx, res.EquipmentID); err != nil {
			uc.logger.Error("SubmitReview: failed to recompute rating for equipment id=%d: %v", res.EquipmentID, err)
			return fmt.Errorf("%w: failed to recompute rating: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitReview: successfully created review id=%d for equipment id=%d", result.ID, result.EquipmentID)

	uc.notifier.Emit(notifier.EventReviewCreated, notifier.ReviewPayload{
		ReviewID:    result.ID,
		EquipmentID: result.EquipmentID,
		AuthorID:    result.AuthorID,
		Rating:      result.Rating,
	})

	return &Response{
		ID:            result.ID,
		EquipmentID:   result.EquipmentID,
		AuthorID:      result.AuthorID,
		ReservationID: result.ReservationID,
		Rating:        result.Rating,
		Comment:       result.Comment,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
