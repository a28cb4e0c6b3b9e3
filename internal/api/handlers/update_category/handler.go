package update_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/categories"
)

const (
	msgInvalidCategoryID   = "некорректный ID категории"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCategoryData = "некорректные данные категории"
	msgNotFound            = "категория не найдена"
	msgDuplicateCategory   = "категория с таким именем уже существует"
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

// Handle PUT /api/v1/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	var req UpdateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), categoryID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrCategoryNotFound):
			h.logger.Warn("PUT /categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, categories.ErrDuplicateCategory):
			h.logger.Warn("PUT /categories/{id} - Duplicate category name: category_id=%d", categoryID)
			handlers.RespondConflict(w, msgDuplicateCategory)

		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("PUT /categories/{id} - Invalid input: category_id=%d, error=%v", categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidCategoryData)

		default:
			h.logger.Error("PUT /categories/{id} - Failed to update category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /categories/{id} - Category updated: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
