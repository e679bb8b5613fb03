package dto

import "time"

// Live-update collections a client may subscribe to.
const (
	LiveTransactions  = "transactions"
	LiveCards         = "cards"
	LiveSubscriptions = "subscriptions"
	LiveBudgets       = "budgets"
	LiveGoals         = "goals"
)

// LiveEvent is one pushed snapshot of a watched collection.
type LiveEvent struct {
	Collection string    `json:"collection"`
	Data       any       `json:"data"`
	At         time.Time `json:"at"`
}
