package models

import (
	"time"

	"github.com/lahh29/finnexus/internal/recurrence"
)

// Subscription status values. Cancelled is the only soft-delete in the system.
const (
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
)

type Subscription struct {
	SubscriptionID string               `firestore:"subscriptionId" json:"subscriptionId"`
	Name           string               `firestore:"name" json:"name"`
	Amount         float64              `firestore:"amount" json:"amount"`
	PaymentDay     int                  `firestore:"paymentDay" json:"paymentDay"`
	Category       string               `firestore:"category" json:"category"`
	Frequency      recurrence.Frequency `firestore:"frequency" json:"frequency"`
	Status         string               `firestore:"status" json:"status"`
	LastPaidDate   string               `firestore:"lastPaidDate,omitempty" json:"lastPaidDate,omitempty"` // YYYY-MM-DD
	CreatedAt      time.Time            `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `firestore:"updatedAt" json:"updatedAt"`
}
