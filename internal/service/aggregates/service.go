package aggregates

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
)

// Service поддерживает консистентность производных полей оборудования
//
// Исходная система обновляла эти поля post-save хуками БД. Здесь пересчет
// выполняется явным синхронным вызовом из операций жизненного цикла и
// операций над отзывами: зависимость видна в сигнатурах и тестируется
// изолированно. Вызывающая сторона обязана выполнять пересчет в той же
// транзакции, что и породившее его изменение.
type Service struct {
	equipmentRepo   EquipmentRepository
	reservationRepo ReservationRepository
	reviewRepo      ReviewRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса агрегатов
func NewService(
	equipmentRepo EquipmentRepository,
	reservationRepo ReservationRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		reviewRepo:      reviewRepo,
		logger:          logger,
	}
}

// RecomputeAvailability пересчитывает флаг доступности оборудования
//
// Правило: reserved, если есть хотя бы одно бронирование в статусе
// confirmed/active; иначе available. Ручные значения владельца
// (unavailable/under_maintenance) пересчет не перезаписывает - кроме
// случая, когда есть блокирующее бронирование: тогда reserved имеет
// приоритет. Pending-бронирование слот удерживает, но флаг не переключает.
func (s *Service) RecomputeAvailability(ctx context.Context, equipmentID int64) error {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("RecomputeAvailability: equipment id=%d not found", equipmentID)
			return ErrEquipmentNotFound
		}
		s.logger.Error("RecomputeAvailability: failed to get equipment id=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: RecomputeAvailability - get equipment: %v", ErrInternal, err)
	}

	reservingCount, err := s.reservationRepo.CountReserving(ctx, equipmentID)
	if err != nil {
		s.logger.Error("RecomputeAvailability: failed to count reservations for equipment id=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: RecomputeAvailability - count reservations: %v", ErrInternal, err)
	}

	target := eq.Availability
	switch {
	case reservingCount > 0:
		target = domain.AvailabilityReserved
	case eq.Availability == domain.AvailabilityReserved:
		target = domain.AvailabilityAvailable
	default:
		// available остается available; ручные unavailable/under_maintenance
		// не трогаем
	}

	if target == eq.Availability {
		return nil
	}

	if err := s.equipmentRepo.UpdateAvailability(ctx, equipmentID, target); err != nil {
		s.logger.Error("RecomputeAvailability: failed to update equipment id=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: RecomputeAvailability - update availability: %v", ErrInternal, err)
	}

	s.logger.Info("RecomputeAvailability: equipment id=%d availability %s -> %s (reserving=%d)",
		equipmentID, eq.Availability, target, reservingCount)
	return nil
}

// RecomputeRating пересчитывает средний рейтинг и количество отзывов
//
// Средняя оценка считается по всем активным отзывам и округляется до
// одного знака после запятой; при отсутствии отзывов рейтинг
// сбрасывается в 0.
func (s *Service) RecomputeRating(ctx context.Context, equipmentID int64) error {
	average, count, err := s.reviewRepo.AggregateByEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Error("RecomputeRating: failed to aggregate reviews for equipment id=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: RecomputeRating - aggregate reviews: %v", ErrInternal, err)
	}

	rounded := math.Round(average*10) / 10

	if err := s.equipmentRepo.UpdateRating(ctx, equipmentID, rounded, count); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("RecomputeRating: equipment id=%d not found", equipmentID)
			return ErrEquipmentNotFound
		}
		s.logger.Error("RecomputeRating: failed to update rating for equipment id=%d: %v", equipmentID, err)
		return fmt.Errorf("%w: RecomputeRating - update rating: %v", ErrInternal, err)
	}

	s.logger.Info("RecomputeRating: equipment id=%d rating=%.1f count=%d", equipmentID, rounded, count)
	return nil
}
