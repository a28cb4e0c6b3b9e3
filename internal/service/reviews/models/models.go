package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// RespondToReviewRequest запрос на ответ владельца оборудования на отзыв
type RespondToReviewRequest struct {
	OrgID int64  `json:"orgId"`
	Text  string `json:"text"`
}

// DeleteReviewRequest запрос на удаление (деактивацию) отзыва
type DeleteReviewRequest struct {
	OrgID int64 `json:"orgId"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID            int64 `json:"id"`
	EquipmentID   int64 `json:"equipmentId"`
	AuthorID      int64 `json:"authorId"`
	ReservationID int64 `json:"reservationId"`

	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`

	OwnerResponseText *string    `json:"ownerResponseText,omitempty"`
	OwnerResponseAt   *time.Time `json:"ownerResponseAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingStatsResponse агрегированная статистика отзывов
type RatingStatsResponse struct {
	RatingAverage float64     `json:"ratingAverage"`
	ReviewCount   int         `json:"reviewCount"`
	Distribution  map[int]int `json:"distribution"`
}

// EquipmentReviewsResponse ответ со списком отзывов и статистикой
type EquipmentReviewsResponse struct {
	Reviews []ReviewResponse    `json:"reviews"`
	Stats   RatingStatsResponse `json:"stats"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		AuthorID:          r.AuthorID,
		ReservationID:     r.ReservationID,
		Rating:            r.Rating,
		Comment:           r.Comment,
		OwnerResponseText: r.OwnerResponseText,
		OwnerResponseAt:   r.OwnerResponseAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// FromDomainReviews конвертирует список отзывов со статистикой в DTO
func FromDomainReviews(reviews []*domain.Review, stats domain.RatingStats) *EquipmentReviewsResponse {
	resp := &EquipmentReviewsResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
		Stats: RatingStatsResponse{
			RatingAverage: stats.RatingAverage,
			ReviewCount:   stats.ReviewCount,
			Distribution:  stats.Distribution,
		},
	}

	for _, r := range reviews {
		if converted := FromDomainReview(r); converted != nil {
			resp.Reviews = append(resp.Reviews, *converted)
		}
	}

	return resp
}
