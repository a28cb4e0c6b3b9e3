package update_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment"
)

const (
	msgInvalidEquipmentID   = "некорректный ID оборудования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "оборудование не найдено"
	msgCategoryNotFound     = "категория не найдена"
	msgForbidden            = "доступ запрещен"
	msgInvalidEquipmentData = "некорректные данные оборудования"
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

// Handle PUT /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	equipmentIDStr := vars["equipmentId"]

	equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /equipment/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	var req UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), equipmentID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("PUT /equipment/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipment.ErrCategoryNotFound):
			h.logger.Warn("PUT /equipment/{id} - Category not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, equipment.ErrAccessDenied):
			h.logger.Warn("PUT /equipment/{id} - Access denied: equipment_id=%d, org_id=%d",
				equipmentID, req.OrgID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("PUT /equipment/{id} - Invalid input: equipment_id=%d, error=%v", equipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentData)

		default:
			h.logger.Error("PUT /equipment/{id} - Failed to update equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /equipment/{id} - Equipment updated: equipment_id=%d, org_id=%d", equipmentID, req.OrgID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
