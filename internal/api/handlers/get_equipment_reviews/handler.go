package get_equipment_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
)

const (
	msgInvalidEquipmentID = "некорректный ID оборудования"
	msgEquipmentNotFound  = "оборудование не найдено"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment/{equipmentId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	equipmentIDStr := vars["equipmentId"]

	equipmentID, err := strconv.ParseInt(equipmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/reviews - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result, err := h.service.ListByEquipment(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id}/reviews - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		default:
			h.logger.Error("GET /equipment/{id}/reviews - Failed to get reviews: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment/{id}/reviews - Fetched %d reviews: equipment_id=%d",
		len(result.Reviews), equipmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
