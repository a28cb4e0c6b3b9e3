package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renterID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	rng := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	if !rng.IsValid() {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	// Бронирование в прошлое не принимается
	if req.StartDate.Before(now) {
		return fmt.Errorf("%w: startDate must not be in the past", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
