package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEquipmentNotFound      = "оборудование не найдено"
	msgRenterNotFound         = "организация-арендатор не найдена"
	msgBookingConflict        = "оборудование уже забронировано на выбранные даты"
	msgEquipmentUnavailable   = "оборудование недоступно для бронирования"
	msgInvalidReservationData = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrBookingConflict):
			h.logger.Warn("POST /reservations - Booking conflict: equipment_id=%d, renter_id=%d",
				req.EquipmentID, req.RenterID)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createReservation.ErrEquipmentNotFound):
			h.logger.Warn("POST /reservations - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createReservation.ErrRenterNotFound):
			h.logger.Warn("POST /reservations - Renter not found: renter_id=%d", req.RenterID)
			handlers.RespondNotFound(w, msgRenterNotFound)

		case errors.Is(err, createReservation.ErrEquipmentUnavailable):
			h.logger.Warn("POST /reservations - Equipment unavailable: equipment_id=%d", req.EquipmentID)
			handlers.RespondConflict(w, msgEquipmentUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: equipment_id=%d, error=%v", req.EquipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidReservationData)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: equipment_id=%d, renter_id=%d, error=%v",
				req.EquipmentID, req.RenterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, equipment_id=%d, renter_id=%d",
		result.ID, req.EquipmentID, req.RenterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
