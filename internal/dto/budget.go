package dto

import "github.com/lahh29/finnexus/internal/models"

type CreateBudgetRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Period   string  `json:"period,omitempty"` // defaults to monthly
}

type UpdateBudgetRequest struct {
	Name   *string  `json:"name,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Period *string  `json:"period,omitempty"`
}

// BudgetView is a stored budget plus its consumption percentage.
type BudgetView struct {
	models.Budget
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
}

type BudgetStats struct {
	TotalBudget     float64 `json:"totalBudget"`
	TotalSpent      float64 `json:"totalSpent"`
	Remaining       float64 `json:"remaining"`
	PercentUsed     float64 `json:"percentUsed"`
	OverBudgetCount int     `json:"overBudgetCount"`
	NearLimitCount  int     `json:"nearLimitCount"`
}
