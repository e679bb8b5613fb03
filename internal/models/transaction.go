package models

import (
	"time"
)

type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Amount        float64   `firestore:"amount" json:"amount"`
	Description   string    `firestore:"description" json:"description"`
	Type          string    `firestore:"type" json:"type"` // "income" or "expense"
	Category      string    `firestore:"category" json:"category"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
