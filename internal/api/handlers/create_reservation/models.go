package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	EquipmentID int64  `json:"equipmentId"`
	RenterID    int64  `json:"renterId"`
	StartDate   string `json:"startDate"` // "2026-09-10"
	EndDate     string `json:"endDate"`   // "2026-09-13"

	DeliveryAddress   *string `json:"deliveryAddress,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	SpecialConditions *string `json:"specialConditions,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipmentId"`
	RenterID    int64  `json:"renterId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TotalDue      float64 `json:"totalDue"`
	DepositAmount float64 `json:"depositAmount"`

	DeliveryAddress   *string `json:"deliveryAddress,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	SpecialConditions *string `json:"specialConditions,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		EquipmentID:       r.EquipmentID,
		RenterID:          r.RenterID,
		StartDate:         startDate,
		EndDate:           endDate,
		DeliveryAddress:   r.DeliveryAddress,
		Notes:             r.Notes,
		SpecialConditions: r.SpecialConditions,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                resp.ID,
		EquipmentID:       resp.EquipmentID,
		RenterID:          resp.RenterID,
		StartDate:         resp.StartDate.Format(domain.DateFormat),
		EndDate:           resp.EndDate.Format(domain.DateFormat),
		Status:            resp.Status,
		PaymentStatus:     resp.PaymentStatus,
		TotalDue:          resp.TotalDue,
		DepositAmount:     resp.DepositAmount,
		DeliveryAddress:   resp.DeliveryAddress,
		Notes:             resp.Notes,
		SpecialConditions: resp.SpecialConditions,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
