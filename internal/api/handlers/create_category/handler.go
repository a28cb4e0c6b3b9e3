package create_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/categories"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCategoryData = "некорректные данные категории"
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

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrDuplicateCategory):
			h.logger.Warn("POST /categories - Duplicate category: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateCategory)

		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidCategoryData)

		default:
			h.logger.Error("POST /categories - Failed to create category: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created successfully: category_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
