package domain

// Quote денежный снимок бронирования, вычисляемый при создании
type Quote struct {
	TotalDue      float64
	DepositAmount float64
}

// CalculateQuote derives the amount due and the deposit for a rental.
// TotalDue bills every started day in full; the deposit is copied verbatim
// from the equipment. Pure function, no error conditions.
func CalculateQuote(r DateRange, dailyRate, deposit float64) Quote {
	return Quote{
		TotalDue:      float64(r.DurationDays()) * dailyRate,
		DepositAmount: deposit,
	}
}
