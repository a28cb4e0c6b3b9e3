package delete_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment"
)

const (
	msgInvalidEquipmentID = "некорректный ID оборудования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "оборудование не найдено"
	msgForbidden          = "доступ запрещен"
)

// DeleteEquipmentRequest HTTP request model
type DeleteEquipmentRequest struct {
	OrgID int64 `json:"orgId"`
}

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

// Handle DELETE /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	equipmentIDStr := vars["equipmentId"]

	equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /equipment/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	var req DeleteEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Deactivate(r.Context(), equipmentID, req.OrgID); err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("DELETE /equipment/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipment.ErrAccessDenied):
			h.logger.Warn("DELETE /equipment/{id} - Access denied: equipment_id=%d, org_id=%d",
				equipmentID, req.OrgID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /equipment/{id} - Failed to deactivate equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /equipment/{id} - Equipment deactivated: equipment_id=%d, org_id=%d",
		equipmentID, req.OrgID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
