package update_payment_status

import (
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	OrgID         int64  `json:"orgId"`
	PaymentStatus string `json:"paymentStatus"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePaymentStatusRequest) ToServiceRequest() *models.UpdatePaymentStatusRequest {
	return &models.UpdatePaymentStatusRequest{
		OrgID:         r.OrgID,
		PaymentStatus: r.PaymentStatus,
	}
}
