package dto

import "github.com/lahh29/finnexus/internal/models"

// Utilization levels
const (
	UtilizationHigh   = "high" // above 80%
	UtilizationNormal = "normal"
)

type CreateCardRequest struct {
	Name        string  `json:"name"`
	Limit       float64 `json:"limit"`
	CutoffDay   int     `json:"cutoffDay"`
	PaymentDay  int     `json:"paymentDay"`
	CurrentDebt float64 `json:"currentDebt"`
}

type UpdateCardDebtRequest struct {
	CurrentDebt float64 `json:"currentDebt"`
}

// CardView is a stored card plus its derived countdown and utilization fields.
type CardView struct {
	models.CreditCard
	DaysToCutoff     int     `json:"daysToCutoff"`
	DaysToPayment    int     `json:"daysToPayment"`
	Utilization      float64 `json:"utilization"`
	UtilizationLevel string  `json:"utilizationLevel"`
}
