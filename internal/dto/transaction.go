package dto

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}
