package create_equipment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgOwnerNotFound        = "организация-владелец не найдена"
	msgCategoryNotFound     = "категория не найдена"
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

// Handle POST /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrOwnerNotFound):
			h.logger.Warn("POST /equipment - Owner not found: owner_id=%d", req.OwnerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, equipment.ErrCategoryNotFound):
			h.logger.Warn("POST /equipment - Category not found: owner_id=%d", req.OwnerID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("POST /equipment - Invalid input: owner_id=%d, error=%v", req.OwnerID, err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentData)

		default:
			h.logger.Error("POST /equipment - Failed to create equipment: owner_id=%d, error=%v", req.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipment - Equipment created successfully: equipment_id=%d, owner_id=%d",
		result.ID, req.OwnerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
