package dto

import "github.com/lahh29/finnexus/internal/models"

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Icon         string  `json:"icon,omitempty"`
	TargetDate   string  `json:"targetDate,omitempty"` // YYYY-MM-DD
}

type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	TargetAmount *float64 `json:"targetAmount,omitempty"`
	Icon         *string  `json:"icon,omitempty"`
	TargetDate   *string  `json:"targetDate,omitempty"` // empty string clears the date
}

type GoalAmountRequest struct {
	Amount float64 `json:"amount"`
}

// GoalView is a stored goal plus its derived progress fields.
type GoalView struct {
	models.SavingsGoal
	Progress      float64 `json:"progress"` // percent, capped at 100
	DaysLeft      *int    `json:"daysLeft,omitempty"`
	IsOverdue     bool    `json:"isOverdue"`
	IsCompleted   bool    `json:"isCompleted"`
	MonthlyNeeded float64 `json:"monthlyNeeded"`
}

type GoalStats struct {
	TotalGoals      int     `json:"totalGoals"`
	ActiveGoals     int     `json:"activeGoals"`
	CompletedGoals  int     `json:"completedGoals"`
	TotalTarget     float64 `json:"totalTarget"`
	TotalSaved      float64 `json:"totalSaved"`
	TotalRemaining  float64 `json:"totalRemaining"`
	OverallProgress float64 `json:"overallProgress"`
}
