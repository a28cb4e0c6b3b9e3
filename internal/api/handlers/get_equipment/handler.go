package get_equipment

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
	msgNotFound           = "оборудование не найдено"
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

// Handle GET /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	equipmentIDStr := vars["equipmentId"]

	equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipment/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /equipment/{id} - Failed to get equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment/{id} - Equipment fetched: equipment_id=%d", equipmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
