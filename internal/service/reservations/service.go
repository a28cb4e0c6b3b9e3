package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований
//
// Владеет машиной состояний pending -> confirmed -> active -> completed
// (с отменой из любого нетерминального статуса). Каждый успешный переход
// синхронно пересчитывает производную доступность оборудования в той же
// транзакции; уведомления публикуются после фиксации и не влияют на
// результат операции.
type Service struct {
	reservationRepo ReservationRepository
	equipmentRepo   EquipmentRepository
	aggregates      AggregateMaintainer
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	equipmentRepo EquipmentRepository,
	aggregates AggregateMaintainer,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		aggregates:      aggregates,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetRenterReservations получает бронирования организации-арендатора
// Опционально фильтрует по статусу
func (s *Service) GetRenterReservations(ctx context.Context, req *models.GetRenterReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRenterReservations: fetching reservations for renter=%d, status=%v", req.RenterID, req.Status)

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetRenterReservations: invalid status=%v for renter=%d", req.Status, req.RenterID)
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByRenter(ctx, req.RenterID, status)
	if err != nil {
		s.logger.Error("GetRenterReservations: repository error for renter=%d: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterReservations: fetched %d reservations for renter=%d", len(reservations), req.RenterID)
	return models.FromDomainReservationList(reservations), nil
}

// GetOwnerReservations получает бронирования, затрагивающие парк
// оборудования организации-владельца
func (s *Service) GetOwnerReservations(ctx context.Context, req *models.GetOwnerReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetOwnerReservations: fetching reservations for owner=%d, status=%v", req.OwnerID, req.Status)

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetOwnerReservations: invalid status=%v for owner=%d", req.Status, req.OwnerID)
		return nil, err
	}

	equipmentIDs, err := s.equipmentRepo.GetIDsByOwner(ctx, req.OwnerID)
	if err != nil {
		s.logger.Error("GetOwnerReservations: failed to get equipment ids for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerReservations - get equipment ids: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetByEquipmentIDs(ctx, equipmentIDs, status)
	if err != nil {
		s.logger.Error("GetOwnerReservations: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerReservations: fetched %d reservations for owner=%d", len(reservations), req.OwnerID)
	return models.FromDomainReservationList(reservations), nil
}

// Confirm переводит бронирование pending -> confirmed
// Фиксирует confirmed_at и пересчитывает доступность оборудования
func (s *Service) Confirm(ctx context.Context, id int64) error {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	var equipmentID, renterID int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getForTransition(txCtx, "Confirm", id)
		if err != nil {
			return err
		}

		if !res.CanBeConfirmed() {
			s.logger.Warn("Confirm: illegal transition for reservation id=%d, status=%s", id, res.Status)
			return ErrInvalidTransition
		}

		if err := s.reservationRepo.Confirm(txCtx, id); err != nil {
			s.logger.Error("Confirm: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		equipmentID = res.EquipmentID
		renterID = res.RenterID
		return s.recomputeAvailability(txCtx, "Confirm", res.EquipmentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Confirm: reservation id=%d confirmed", id)
	s.notifier.Emit(notifier.EventReservationConfirmed, notifier.ReservationPayload{
		ReservationID: id,
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		Status:        string(domain.StatusConfirmed),
	})
	return nil
}

// Cancel переводит бронирование в cancelled с обязательной причиной
// Повторная отмена - ошибка, а не no-op
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by org=%d", id, req.OrgID)

	if req.CancellationReason == "" {
		s.logger.Warn("Cancel: missing cancellation reason for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var equipmentID, renterID int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getForTransition(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: illegal transition for reservation id=%d, status=%s", id, res.Status)
			return ErrInvalidTransition
		}

		if err := s.reservationRepo.Cancel(txCtx, id, req.CancellationReason); err != nil {
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		equipmentID = res.EquipmentID
		renterID = res.RenterID
		return s.recomputeAvailability(txCtx, "Cancel", res.EquipmentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	s.notifier.Emit(notifier.EventReservationCancelled, notifier.ReservationPayload{
		ReservationID: id,
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		Status:        string(domain.StatusCancelled),
	})
	return nil
}

// Activate переводит бронирование confirmed -> active
// Автоматической активации по датам нет: это прямой операторский переход,
// охраняемый теми же проверками легальности, что и остальные
func (s *Service) Activate(ctx context.Context, id int64) error {
	s.logger.Info("Activate: activating reservation id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getForTransition(txCtx, "Activate", id)
		if err != nil {
			return err
		}

		if !res.CanBeActivated() {
			s.logger.Warn("Activate: illegal transition for reservation id=%d, status=%s", id, res.Status)
			return ErrInvalidTransition
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusActive); err != nil {
			s.logger.Error("Activate: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
		}

		return s.recomputeAvailability(txCtx, "Activate", res.EquipmentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Activate: reservation id=%d activated", id)
	return nil
}

// Complete переводит бронирование active -> completed
func (s *Service) Complete(ctx context.Context, id int64) error {
	s.logger.Info("Complete: completing reservation id=%d", id)

	var equipmentID, renterID int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getForTransition(txCtx, "Complete", id)
		if err != nil {
			return err
		}

		if !res.CanBeCompleted() {
			s.logger.Warn("Complete: illegal transition for reservation id=%d, status=%s", id, res.Status)
			return ErrInvalidTransition
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusCompleted); err != nil {
			s.logger.Error("Complete: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		equipmentID = res.EquipmentID
		renterID = res.RenterID
		return s.recomputeAvailability(txCtx, "Complete", res.EquipmentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Complete: reservation id=%d completed", id)
	s.notifier.Emit(notifier.EventReservationCompleted, notifier.ReservationPayload{
		ReservationID: id,
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		Status:        string(domain.StatusCompleted),
	})
	return nil
}

// UpdatePaymentStatus обновляет статус оплаты
// Ортогонален жизненному циклу: доступность не пересчитывается
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, req *models.UpdatePaymentStatusRequest) error {
	s.logger.Info("UpdatePaymentStatus: reservation id=%d -> %s", id, req.PaymentStatus)

	status, ok := domain.ValidPaymentStatus(req.PaymentStatus)
	if !ok {
		s.logger.Warn("UpdatePaymentStatus: invalid payment status=%s for reservation id=%d", req.PaymentStatus, id)
		return fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	if err := s.reservationRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdatePaymentStatus: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdatePaymentStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdatePaymentStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePaymentStatus: reservation id=%d payment status set to %s", id, status)
	return nil
}

// Delete физически удаляет бронирование (административный путь)
// Разрешено только из терминальных статусов; удаление обновляет
// производную доступность так же, как сделала бы отмена
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getForTransition(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if !res.IsTerminal() {
			s.logger.Warn("Delete: reservation id=%d is not terminal (status=%s), refusing hard delete", id, res.Status)
			return ErrInvalidTransition
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return s.recomputeAvailability(txCtx, "Delete", res.EquipmentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// getForTransition читает бронирование внутри транзакции перехода
// (репозиторий блокирует строку через FOR UPDATE)
func (s *Service) getForTransition(ctx context.Context, method string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", method, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return res, nil
}

func (s *Service) recomputeAvailability(ctx context.Context, method string, equipmentID int64) error {
	if err := s.aggregates.RecomputeAvailability(ctx, equipmentID); err != nil {
		s.logger.Error("%s: failed to recompute availability for equipment id=%d: %v", method, equipmentID, err)
		return fmt.Errorf("%w: %s - recompute availability: %v", ErrInternal, method, err)
	}
	return nil
}

func parseStatusFilter(raw *string) (*domain.ReservationStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, ok := domain.ValidReservationStatus(*raw)
	if !ok {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return &status, nil
}
