package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateEquipmentRequest запрос на создание оборудования
type CreateEquipmentRequest struct {
	OwnerID     int64   `json:"ownerId"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DailyRate   float64 `json:"dailyRate"`
	Deposit     float64 `json:"deposit"`
}

// UpdateEquipmentRequest запрос на обновление оборудования
// Обновляются только поля, заданные владельцем; производные поля
// (availability, rating) через этот запрос изменить нельзя
type UpdateEquipmentRequest struct {
	OrgID       int64    `json:"orgId"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DailyRate   *float64 `json:"dailyRate,omitempty"`
	Deposit     *float64 `json:"deposit,omitempty"`
}

// SetAvailabilityRequest запрос на ручную установку доступности
type SetAvailabilityRequest struct {
	OrgID        int64  `json:"orgId"`
	Availability string `json:"availability"`
}

// ListEquipmentRequest запрос списка оборудования с фильтрами
type ListEquipmentRequest struct {
	OwnerID      *int64   `json:"ownerId,omitempty"`
	CategoryID   *int64   `json:"categoryId,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	PriceMin     *float64 `json:"priceMin,omitempty"`
	PriceMax     *float64 `json:"priceMax,omitempty"`
}

// Response модели

// EquipmentResponse ответ с данными оборудования
type EquipmentResponse struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"ownerId"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	DailyRate float64 `json:"dailyRate"`
	Deposit   float64 `json:"deposit"`

	Availability  string  `json:"availability"`
	RatingAverage float64 `json:"ratingAverage"`
	ReviewCount   int     `json:"reviewCount"`

	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EquipmentListResponse ответ со списком оборудования
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// Методы конвертации

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	return &EquipmentResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		CategoryID:    e.CategoryID,
		Name:          e.Name,
		Description:   e.Description,
		DailyRate:     e.DailyRate,
		Deposit:       e.Deposit,
		Availability:  string(e.Availability),
		RatingAverage: e.RatingAverage,
		ReviewCount:   e.ReviewCount,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(equipment []*domain.Equipment) *EquipmentListResponse {
	if equipment == nil {
		return &EquipmentListResponse{
			Equipment: []EquipmentResponse{},
		}
	}

	resp := &EquipmentListResponse{
		Equipment: make([]EquipmentResponse, len(equipment)),
	}

	for i, e := range equipment {
		if converted := FromDomainEquipment(e); converted != nil {
			resp.Equipment[i] = *converted
		}
	}

	return resp
}
