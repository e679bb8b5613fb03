package dto

import (
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/recurrence"
)

type CreateSubscriptionRequest struct {
	Name       string               `json:"name"`
	Amount     float64              `json:"amount"`
	PaymentDay int                  `json:"paymentDay"`
	Category   string               `json:"category"`
	Frequency  recurrence.Frequency `json:"frequency"`
}

type UpdateSubscriptionRequest struct {
	Name       *string               `json:"name,omitempty"`
	Amount     *float64              `json:"amount,omitempty"`
	PaymentDay *int                  `json:"paymentDay,omitempty"`
	Category   *string               `json:"category,omitempty"`
	Frequency  *recurrence.Frequency `json:"frequency,omitempty"`
}

type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status"`
}

// SubscriptionView is a stored subscription plus its resolved schedule.
type SubscriptionView struct {
	models.Subscription
	NextPaymentDate   string             `json:"nextPaymentDate"` // YYYY-MM-DD
	DaysLeft          int                `json:"daysLeft"`
	Urgency           recurrence.Urgency `json:"urgency"`
	MonthlyEquivalent float64            `json:"monthlyEquivalent"`
}
