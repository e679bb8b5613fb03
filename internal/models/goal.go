package models

import "time"

type SavingsGoal struct {
	GoalID        string     `firestore:"goalId" json:"goalId"`
	Name          string     `firestore:"name" json:"name"`
	TargetAmount  float64    `firestore:"targetAmount" json:"targetAmount"`
	CurrentAmount float64    `firestore:"currentAmount" json:"currentAmount"`
	TargetDate    *time.Time `firestore:"targetDate,omitempty" json:"targetDate,omitempty"`
	Icon          string     `firestore:"icon" json:"icon"`
	Color         string     `firestore:"color" json:"color"`
	CreatedAt     time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
