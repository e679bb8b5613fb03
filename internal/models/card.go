package models

import "time"

// CreditCard is stored as entered by the user; utilization and the cutoff and
// payment countdowns are derived at read time, never persisted.
type CreditCard struct {
	CardID      string    `firestore:"cardId" json:"cardId"`
	Name        string    `firestore:"name" json:"name"`
	Limit       float64   `firestore:"limit" json:"limit"`
	CurrentDebt float64   `firestore:"currentDebt" json:"currentDebt"`
	CutoffDay   int       `firestore:"cutoffDay" json:"cutoffDay"`
	PaymentDay  int       `firestore:"paymentDay" json:"paymentDay"`
	ColorTag    string    `firestore:"colorTag" json:"colorTag"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
