package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/equipment"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
)

// Код ошибки PostgreSQL при срыве сериализуемой транзакции
const pgSerializationFailure = "40001"

// UseCase use case для создания бронирования
//
// Проверка занятости и вставка выполняются в одной сериализуемой
// транзакции с блокировкой конфликтующих строк: два конкурирующих
// запроса на пересекающийся диапазон не могут зафиксироваться оба.
type UseCase struct {
	reservationRepo ReservationRepository
	equipmentRepo   EquipmentRepository
	accountClient   AccountClient
	aggregates      AggregateMaintainer
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	equipmentRepo EquipmentRepository,
	accountClient AccountClient,
	aggregates AggregateMaintainer,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		accountClient:   accountClient,
		aggregates:      aggregates,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: equipment=%d, renter=%d, range=[%s, %s)",
		req.EquipmentID, req.RenterID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование арендатора
	exists, err := uc.accountClient.Exists(ctx, req.RenterID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check renter id=%d: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: failed to check renter: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateReservation: renter organization id=%d not found", req.RenterID)
		return nil, ErrRenterNotFound
	}

	rng := domain.DateRange{Start: req.StartDate, End: req.EndDate}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Выполняем проверку занятости и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем оборудование с блокировкой строки
		eq, err := uc.equipmentRepo.GetByID(txCtx, req.EquipmentID)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
				uc.logger.Warn("CreateReservation: equipment id=%d not found", req.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("CreateReservation: failed to get equipment id=%d: %v", req.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}

		if !eq.IsActive {
			uc.logger.Warn("CreateReservation: equipment id=%d is deactivated", req.EquipmentID)
			return ErrEquipmentNotFound
		}

		// Ручной вывод с рынка владельцем запрещает новые бронирования
		if eq.IsManuallyBlocked() {
			uc.logger.Warn("CreateReservation: equipment id=%d is manually blocked (%s)", req.EquipmentID, eq.Availability)
			return ErrEquipmentUnavailable
		}

		// 3.2. Ищем блокирующие бронирования в запрошенном диапазоне
		// (полуоткрытые интервалы: стыкующиеся диапазоны не конфликтуют)
		blocking, err := uc.reservationRepo.FindBlockingInRange(txCtx, req.EquipmentID, rng)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to find blocking reservations: %v", err)
			return fmt.Errorf("%w: failed to find blocking reservations: %v", ErrInternal, err)
		}

		if len(blocking) > 0 {
			uc.logger.Warn("CreateReservation: equipment id=%d has %d blocking reservations in range",
				req.EquipmentID, len(blocking))
			return ErrBookingConflict
		}

		// 3.3. Фиксируем денежный снимок по текущему тарифу
		quote := domain.CalculateQuote(rng, eq.DailyRate, eq.Deposit)

		reservation := &domain.Reservation{
			EquipmentID:       req.EquipmentID,
			RenterID:          req.RenterID,
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Status:            domain.StatusPending,
			PaymentStatus:     domain.PaymentPending,
			TotalDue:          quote.TotalDue,
			DepositAmount:     quote.DepositAmount,
			DeliveryAddress:   req.DeliveryAddress,
			Notes:             req.Notes,
			SpecialConditions: req.SpecialConditions,
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.5. Пересчитываем производную доступность в той же транзакции
		if err := uc.aggregates.RecomputeAvailability(txCtx, req.EquipmentID); err != nil {
			uc.logger.Error("CreateReservation: failed to recompute availability: %v", err)
			return fmt.Errorf("%w: failed to recompute availability: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Срыв сериализации означает конкурирующее бронирование того же
		// диапазона: для клиента это тот же конфликт занятости
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: serialization failure for equipment id=%d, treating as conflict", req.EquipmentID)
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%.2f, deposit=%.2f",
		result.ID, result.TotalDue, result.DepositAmount)

	uc.notifier.Emit(notifier.EventReservationCreated, notifier.ReservationPayload{
		ReservationID: result.ID,
		EquipmentID:   result.EquipmentID,
		RenterID:      result.RenterID,
		Status:        string(result.Status),
	})

	return toResponse(result), nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFailure
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		RenterID:          r.RenterID,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Status:            string(r.Status),
		PaymentStatus:     string(r.PaymentStatus),
		TotalDue:          r.TotalDue,
		DepositAmount:     r.DepositAmount,
		DeliveryAddress:   r.DeliveryAddress,
		Notes:             r.Notes,
		SpecialConditions: r.SpecialConditions,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
