package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateCategoryRequest запрос на создание категории
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// UpdateCategoryRequest запрос на обновление категории
// Обновляются только переданные поля
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Response модели

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon"`
	IsActive    bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// Методы конвертации

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCategoryList конвертирует список domain моделей в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	if categories == nil {
		return &CategoryListResponse{
			Categories: []CategoryResponse{},
		}
	}

	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, len(categories)),
	}

	for i, c := range categories {
		if converted := FromDomainCategory(c); converted != nil {
			resp.Categories[i] = *converted
		}
	}

	return resp
}
