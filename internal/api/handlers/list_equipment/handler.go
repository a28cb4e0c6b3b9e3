package list_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment"
	"github.com/m04kA/SMC-RentalService/internal/service/equipment/models"
)

const (
	msgInvalidQueryParams = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/equipment?ownerId=&categoryId=&availability=&priceMin=&priceMax=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilters(r)
	if err != nil {
		h.logger.Warn("GET /equipment - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("GET /equipment - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /equipment - Failed to list equipment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment - Fetched %d equipment items", len(result.Equipment))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseFilters(r *http.Request) (*models.ListEquipmentRequest, error) {
	req := &models.ListEquipmentRequest{}
	query := r.URL.Query()

	if raw := query.Get("ownerId"); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.OwnerID = &ownerID
	}

	if raw := query.Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CategoryID = &categoryID
	}

	if raw := query.Get("availability"); raw != "" {
		req.Availability = &raw
	}

	if raw := query.Get("priceMin"); raw != "" {
		priceMin, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMin = &priceMin
	}

	if raw := query.Get("priceMax"); raw != "" {
		priceMax, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMax = &priceMax
	}

	return req, nil
}
