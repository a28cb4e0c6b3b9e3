package get_owner_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

const (
	msgInvalidOrgID  = "некорректный ID организации"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{orgId}/equipment-reservations?status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orgIDStr := vars["orgId"]

	orgID, err := strconv.ParseInt(orgIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/equipment-reservations - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	req := &models.GetOwnerReservationsRequest{
		OwnerID: orgID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetOwnerReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/equipment-reservations - Invalid status filter: org_id=%d", orgID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /organizations/{id}/equipment-reservations - Failed to get reservations: org_id=%d, error=%v",
				orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /organizations/{id}/equipment-reservations - Fetched %d reservations: org_id=%d",
		len(result.Reservations), orgID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
