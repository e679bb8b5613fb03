package models

import "time"

// Budget periods.
const (
	BudgetWeekly   = "weekly"
	BudgetBiweekly = "biweekly"
	BudgetMonthly  = "monthly"
	BudgetYearly   = "yearly"
)

// Budget tracks planned spending for one category. Spent is a running
// accumulator adjusted transactionally with expense writes, never recomputed
// from the transaction history.
type Budget struct {
	BudgetID  string    `firestore:"budgetId" json:"budgetId"`
	Name      string    `firestore:"name" json:"name"`
	Amount    float64   `firestore:"amount" json:"amount"`
	Spent     float64   `firestore:"spent" json:"spent"`
	Category  string    `firestore:"category" json:"category"`
	Period    string    `firestore:"period" json:"period"`
	StartDate time.Time `firestore:"startDate" json:"startDate"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
