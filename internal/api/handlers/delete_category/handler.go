package delete_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/categories"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgNotFound          = "категория не найдена"
)

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, categories.ErrCategoryNotFound):
			h.logger.Warn("DELETE /categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /categories/{id} - Failed to delete category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /categories/{id} - Category deleted: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
