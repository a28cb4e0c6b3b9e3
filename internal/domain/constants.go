package domain

// Business validation constants
const (
	MinEquipmentNameLength      = 2
	MinCategoryNameLength       = 2
	MaxCommentLength            = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinRating                   = 1
	MaxRating                   = 5
)

// DefaultCategoryIcon подставляется, когда категория создана без иконки
const DefaultCategoryIcon = "📦"

// Time format constants
const (
	DateTimeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339
	DateFormat     = "2006-01-02"                // YYYY-MM-DD
)

// BlockingStatuses статусы, занимающие диапазон дат при проверке конфликтов
// Бронирование в ожидании удерживает слот наравне с подтвержденным
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
}

// ReservingStatuses статусы, переводящие оборудование в состояние reserved
// Pending слот удерживает, но флаг доступности не переключает
var ReservingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusActive,
}

// TerminalStatuses статусы, из которых нет дальнейших переходов
var TerminalStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidReservationStatus проверяет, что строка является допустимым статусом
func ValidReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

// ValidPaymentStatus проверяет, что строка является допустимым статусом оплаты
func ValidPaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentPartial:
		return PaymentStatus(s), true
	}
	return "", false
}

// ValidAvailability проверяет, что строка является допустимым значением доступности
func ValidAvailability(s string) (EquipmentAvailability, bool) {
	switch EquipmentAvailability(s) {
	case AvailabilityAvailable, AvailabilityReserved, AvailabilityUnavailable, AvailabilityUnderMaintenance:
		return EquipmentAvailability(s), true
	}
	return "", false
}
