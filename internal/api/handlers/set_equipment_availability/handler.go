package set_equipment_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment"
)

const (
	msgInvalidEquipmentID  = "некорректный ID оборудования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "оборудование не найдено"
	msgForbidden           = "доступ запрещен"
	msgInvalidAvailability = "некорректное значение доступности"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/equipment/{equipmentId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	equipmentIDStr := vars["equipmentId"]

	equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /equipment/{id}/availability - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /equipment/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetAvailability(r.Context(), equipmentID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("PATCH /equipment/{id}/availability - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipment.ErrAccessDenied):
			h.logger.Warn("PATCH /equipment/{id}/availability - Access denied: equipment_id=%d, org_id=%d",
				equipmentID, req.OrgID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("PATCH /equipment/{id}/availability - Invalid availability: equipment_id=%d, value=%s",
				equipmentID, req.Availability)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		default:
			h.logger.Error("PATCH /equipment/{id}/availability - Failed to set availability: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /equipment/{id}/availability - Availability set: equipment_id=%d, value=%s",
		equipmentID, req.Availability)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
