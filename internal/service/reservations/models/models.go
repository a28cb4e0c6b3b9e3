package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	OrgID              int64  `json:"orgId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdatePaymentStatusRequest запрос на обновление статуса оплаты
type UpdatePaymentStatusRequest struct {
	OrgID         int64  `json:"orgId"`
	PaymentStatus string `json:"paymentStatus"`
}

// GetRenterReservationsRequest запрос бронирований организации-арендатора
type GetRenterReservationsRequest struct {
	RenterID int64   `json:"renterId"`
	Status   *string `json:"status,omitempty"`
}

// GetOwnerReservationsRequest запрос бронирований по парку владельца
type GetOwnerReservationsRequest struct {
	OwnerID int64   `json:"ownerId"`
	Status  *string `json:"status,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipmentId"`
	RenterID    int64  `json:"renterId"`
	StartDate   string `json:"startDate"` // RFC 3339
	EndDate     string `json:"endDate"`   // RFC 3339

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TotalDue      float64 `json:"totalDue"`
	DepositAmount float64 `json:"depositAmount"`

	DeliveryAddress   *string `json:"deliveryAddress,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	SpecialConditions *string `json:"specialConditions,omitempty"`

	ConfirmedAt        *string `json:"confirmedAt,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		EquipmentID:        r.EquipmentID,
		RenterID:           r.RenterID,
		StartDate:          r.StartDate.Format(time.RFC3339),
		EndDate:            r.EndDate.Format(time.RFC3339),
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		TotalDue:           r.TotalDue,
		DepositAmount:      r.DepositAmount,
		DeliveryAddress:    r.DeliveryAddress,
		Notes:              r.Notes,
		SpecialConditions:  r.SpecialConditions,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.ConfirmedAt != nil {
		confirmed := r.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmed
	}
	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations[i] = *converted
		}
	}

	return resp
}
