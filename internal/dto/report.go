package dto

import "github.com/lahh29/finnexus/internal/models"

// Health statuses
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
)

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// TransactionTotals is the pure fold over a transaction list.
type TransactionTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type CategoryBreakdownItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SubscriptionTotals struct {
	MonthlyTotal   float64            `json:"monthlyTotal"`
	AnnualTotal    float64            `json:"annualTotal"`
	ThisMonthTotal float64            `json:"thisMonthTotal"`
	Next7DaysTotal float64            `json:"next7DaysTotal"`
	ByCategory     map[string]float64 `json:"byCategory"`
}

type CardTotals struct {
	TotalLimit  float64 `json:"totalLimit"`
	TotalDebt   float64 `json:"totalDebt"`
	Utilization float64 `json:"utilization"` // percent, 0 when no limit
}

type CardsReport struct {
	TotalCards           int        `json:"totalCards"`
	TotalLimit           float64    `json:"totalLimit"`
	TotalDebt            float64    `json:"totalDebt"`
	AvailableCredit      float64    `json:"availableCredit"`
	Utilization          float64    `json:"utilization"`
	AverageUtilization   float64    `json:"averageUtilization"`
	HighUtilizationCards []CardView `json:"highUtilizationCards"` // at or above 70%
	UpcomingPayments     []CardView `json:"upcomingPayments"`     // due within 7 days
	HealthStatus         string     `json:"healthStatus"`
}

type SubscriptionsReport struct {
	SubscriptionTotals
	Count                  int                     `json:"count"`
	AveragePerSubscription float64                 `json:"averagePerSubscription"`
	ByCategoryRanked       []CategoryBreakdownItem `json:"byCategoryRanked"`
}

type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

type FinancialHealth struct {
	Score             int              `json:"score"`
	Status            string           `json:"status"`
	SavingsRate       float64          `json:"savingsRate"`
	FixedExpenseRatio float64          `json:"fixedExpenseRatio"`
	DebtToIncomeRatio float64          `json:"debtToIncomeRatio"`
	Recommendations   []Recommendation `json:"recommendations"`
}

type PeriodTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type MonthComparison struct {
	Current          PeriodTotals `json:"current"`
	Last             PeriodTotals `json:"last"`
	IncomeChange     float64      `json:"incomeChange"`  // percent
	ExpenseChange    float64      `json:"expenseChange"` // percent
	IncomeDirection  string       `json:"incomeDirection"`
	ExpenseDirection string       `json:"expenseDirection"`
}

type MonthlyTrendPoint struct {
	Month       string  `json:"month"` // YYYY-MM
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Net         float64 `json:"net"`
	SavingsRate float64 `json:"savingsRate"`
}

type DailyTrendPoint struct {
	Day     int     `json:"day"`
	Date    string  `json:"date"` // YYYY-MM-DD
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
	HasData bool    `json:"hasData"`
}

type DailyAverages struct {
	AvgDailyIncome          float64 `json:"avgDailyIncome"`
	AvgDailyExpense         float64 `json:"avgDailyExpense"`
	ProjectedMonthlyIncome  float64 `json:"projectedMonthlyIncome"`
	ProjectedMonthlyExpense float64 `json:"projectedMonthlyExpense"`
	ProjectedBalance        float64 `json:"projectedBalance"`
}

// Report is the full analytics payload for a user.
type Report struct {
	Totals             TransactionTotals       `json:"totals"`
	ExpensesByCategory []CategoryBreakdownItem `json:"expensesByCategory"`
	IncomeByCategory   []CategoryBreakdownItem `json:"incomeByCategory"`
	MonthComparison    MonthComparison         `json:"monthComparison"`
	MonthlyTrend       []MonthlyTrendPoint     `json:"monthlyTrend"`
	DailyTrend         []DailyTrendPoint       `json:"dailyTrend"`
	DailyAverages      DailyAverages           `json:"dailyAverages"`
	TopExpenses        []models.Transaction    `json:"topExpenses"`
	Cards              CardsReport             `json:"cards"`
	Subscriptions      SubscriptionsReport     `json:"subscriptions"`
	Health             FinancialHealth         `json:"health"`
}
