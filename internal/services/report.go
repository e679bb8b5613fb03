package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/recurrence"
	"github.com/lahh29/finnexus/internal/taxonomy"
)

const trendMonths = 6

type reportTransactionStore interface {
	List(ctx context.Context, uid string) ([]*models.Transaction, error)
}

type reportCardStore interface {
	List(ctx context.Context, uid string) ([]*models.CreditCard, error)
}

type reportSubscriptionStore interface {
	List(ctx context.Context, uid string) ([]*models.Subscription, error)
}

type reportService struct {
	transactions  reportTransactionStore
	cards         reportCardStore
	subscriptions reportSubscriptionStore
	clockNow      func() time.Time
}

func NewReportService(transactions reportTransactionStore, cards reportCardStore, subscriptions reportSubscriptionStore) *reportService {
	return &reportService{
		transactions:  transactions,
		cards:         cards,
		subscriptions: subscriptions,
		clockNow:      time.Now,
	}
}

// GetReport assembles the full analytics payload. Everything below the store
// reads is pure computation over the fetched lists.
func (s *reportService) GetReport(ctx context.Context, uid string) (*dto.Report, error) {
	transactions, err := s.transactions.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptions.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.clockNow()
	month := monthKey(now)
	thisMonth := transactionsInMonth(transactions, month)
	totals := AggregateTransactions(thisMonth)
	subTotals := AggregateSubscriptions(subscriptions, now)
	cardTotals := AggregateCards(cards)

	report := &dto.Report{
		Totals:             totals,
		ExpensesByCategory: categoryBreakdown(thisMonth, dto.TypeExpense),
		IncomeByCategory:   categoryBreakdown(thisMonth, dto.TypeIncome),
		MonthComparison:    monthComparison(transactions, now),
		MonthlyTrend:       monthlyTrend(transactions, now),
		DailyTrend:         dailyTrend(thisMonth, now),
		DailyAverages:      dailyAverages(totals, now),
		TopExpenses:        topExpenses(thisMonth, 5),
		Cards:              cardsReport(cards, now),
		Subscriptions:      subscriptionsReport(subscriptions, subTotals),
		Health:             financialHealth(totals, cardTotals, subTotals),
	}
	return report, nil
}

func (s *reportService) GetHealth(ctx context.Context, uid string) (*dto.FinancialHealth, error) {
	transactions, err := s.transactions.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptions.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.clockNow()
	totals := AggregateTransactions(transactionsInMonth(transactions, monthKey(now)))
	health := financialHealth(totals, AggregateCards(cards), AggregateSubscriptions(subscriptions, now))
	return &health, nil
}

// AggregateTransactions folds a transaction list into income, expense and
// balance. Unknown types are ignored.
func AggregateTransactions(transactions []*models.Transaction) dto.TransactionTotals {
	var t dto.TransactionTotals
	for _, tx := range transactions {
		switch tx.Type {
		case dto.TypeIncome:
			t.Income += tx.Amount
		case dto.TypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// AggregateSubscriptions folds active subscriptions into cost totals. Paused
// and cancelled subscriptions cost nothing.
func AggregateSubscriptions(subscriptions []*models.Subscription, now time.Time) dto.SubscriptionTotals {
	totals := dto.SubscriptionTotals{ByCategory: map[string]float64{}}
	for _, sub := range subscriptions {
		if sub.Status != models.SubscriptionActive {
			continue
		}
		monthly := recurrence.MonthlyEquivalent(sub.Amount, sub.Frequency)
		totals.MonthlyTotal += monthly
		totals.AnnualTotal += recurrence.AnnualEquivalent(sub.Amount, sub.Frequency)
		totals.ByCategory[taxonomy.Normalize(sub.Category)] += monthly

		occ, err := recurrence.NextOccurrence(now, sub.PaymentDay, sub.Frequency)
		if err != nil {
			continue
		}
		if occ.NextDate.Month() == now.Month() && occ.NextDate.Year() == now.Year() {
			totals.ThisMonthTotal += sub.Amount
		}
		if occ.DaysLeft <= 7 {
			totals.Next7DaysTotal += sub.Amount
		}
	}
	return totals
}

// AggregateCards folds a card list into limit, debt and overall utilization.
func AggregateCards(cards []*models.CreditCard) dto.CardTotals {
	var t dto.CardTotals
	for _, c := range cards {
		t.TotalLimit += c.Limit
		t.TotalDebt += c.CurrentDebt
	}
	t.Utilization = CardUtilization(t.TotalDebt, t.TotalLimit)
	return t
}

// ScoreHealth applies the fixed deduction policy: start at 100, deduct per
// savings-rate, utilization and fixed-expense-ratio bracket, clamp at 0. The
// recommendation order is fixed: savings, then credit, then fixed expenses.
func ScoreHealth(savingsRate, utilization, fixedRatio float64) (int, []dto.Recommendation) {
	score := 100

	switch {
	case savingsRate < 0:
		score -= 30
	case savingsRate < 10:
		score -= 20
	case savingsRate < 20:
		score -= 10
	}
	switch {
	case utilization > 70:
		score -= 25
	case utilization > 50:
		score -= 15
	case utilization > 30:
		score -= 5
	}
	switch {
	case fixedRatio > 50:
		score -= 20
	case fixedRatio > 30:
		score -= 10
	}
	if score < 0 {
		score = 0
	}

	var recs []dto.Recommendation
	if savingsRate < 20 {
		recs = append(recs, dto.Recommendation{
			Type:     "savings",
			Priority: dto.PriorityHigh,
			Message:  fmt.Sprintf("Your savings rate is %.1f%%. Aim to save at least 20%% of your income.", savingsRate),
		})
	}
	if utilization > 30 {
		priority := dto.PriorityMedium
		if utilization > 70 {
			priority = dto.PriorityHigh
		}
		recs = append(recs, dto.Recommendation{
			Type:     "credit",
			Priority: priority,
			Message:  fmt.Sprintf("Your credit utilization is %.1f%%. Keep it under 30%% to protect your credit health.", utilization),
		})
	}
	if fixedRatio > 30 {
		recs = append(recs, dto.Recommendation{
			Type:     "fixed",
			Priority: dto.PriorityMedium,
			Message:  fmt.Sprintf("Recurring commitments consume %.1f%% of your income. Review subscriptions you no longer use.", fixedRatio),
		})
	}
	return score, recs
}

// HealthStatus buckets a score into a label.
func HealthStatus(score int) string {
	switch {
	case score < 50:
		return dto.HealthPoor
	case score < 70:
		return dto.HealthFair
	case score < 85:
		return dto.HealthGood
	default:
		return dto.HealthExcellent
	}
}

func financialHealth(totals dto.TransactionTotals, cards dto.CardTotals, subs dto.SubscriptionTotals) dto.FinancialHealth {
	var savingsRate, fixedRatio, debtToIncome float64
	if totals.Income > 0 {
		savingsRate = totals.Balance / totals.Income * 100
		fixedRatio = subs.MonthlyTotal / totals.Income * 100
		debtToIncome = cards.TotalDebt / totals.Income * 100
	}

	score, recs := ScoreHealth(savingsRate, cards.Utilization, fixedRatio)
	return dto.FinancialHealth{
		Score:             score,
		Status:            HealthStatus(score),
		SavingsRate:       savingsRate,
		FixedExpenseRatio: fixedRatio,
		DebtToIncomeRatio: debtToIncome,
		Recommendations:   recs,
	}
}

func categoryBreakdown(transactions []*models.Transaction, txType string) []dto.CategoryBreakdownItem {
	var total float64
	byCategory := map[string]*dto.CategoryBreakdownItem{}
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		category := taxonomy.Normalize(tx.Category)
		item, ok := byCategory[category]
		if !ok {
			item = &dto.CategoryBreakdownItem{Category: category}
			byCategory[category] = item
		}
		item.Amount += tx.Amount
		item.Count++
		total += tx.Amount
	}

	items := make([]dto.CategoryBreakdownItem, 0, len(byCategory))
	for _, item := range byCategory {
		if total > 0 {
			item.Percentage = item.Amount / total * 100
		}
		items = append(items, *item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].Category < items[j].Category
	})
	return items
}

func monthComparison(transactions []*models.Transaction, now time.Time) dto.MonthComparison {
	current := AggregateTransactions(transactionsInMonth(transactions, monthKey(now)))
	last := AggregateTransactions(transactionsInMonth(transactions, monthKey(now.AddDate(0, -1, 0))))

	cmp := dto.MonthComparison{
		Current: dto.PeriodTotals{Income: current.Income, Expense: current.Expense, Net: current.Balance},
		Last:    dto.PeriodTotals{Income: last.Income, Expense: last.Expense, Net: last.Balance},
	}
	cmp.IncomeChange = percentChange(last.Income, current.Income)
	cmp.ExpenseChange = percentChange(last.Expense, current.Expense)
	cmp.IncomeDirection = direction(cmp.IncomeChange)
	cmp.ExpenseDirection = direction(cmp.ExpenseChange)
	return cmp
}

func monthlyTrend(transactions []*models.Transaction, now time.Time) []dto.MonthlyTrendPoint {
	points := make([]dto.MonthlyTrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := monthKey(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0))
		totals := AggregateTransactions(transactionsInMonth(transactions, month))

		point := dto.MonthlyTrendPoint{
			Month:   month,
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Balance,
		}
		if totals.Income > 0 {
			point.SavingsRate = totals.Balance / totals.Income * 100
		}
		points = append(points, point)
	}
	return points
}

// dailyTrend emits one point per calendar day of the current month, including
// the days with no activity so the chart axis stays complete.
func dailyTrend(transactions []*models.Transaction, now time.Time) []dto.DailyTrendPoint {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	points := make([]dto.DailyTrendPoint, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location()).Format(txDateLayout)
		point := dto.DailyTrendPoint{Day: day, Date: date}
		for _, tx := range transactions {
			if tx.Date != date {
				continue
			}
			point.HasData = true
			switch tx.Type {
			case dto.TypeIncome:
				point.Income += tx.Amount
			case dto.TypeExpense:
				point.Expense += tx.Amount
			}
		}
		point.Net = point.Income - point.Expense
		points = append(points, point)
	}
	return points
}

func dailyAverages(totals dto.TransactionTotals, now time.Time) dto.DailyAverages {
	day := float64(now.Day())
	daysInMonth := float64(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day())

	avg := dto.DailyAverages{
		AvgDailyIncome:  totals.Income / day,
		AvgDailyExpense: totals.Expense / day,
	}
	avg.ProjectedMonthlyIncome = avg.AvgDailyIncome * daysInMonth
	avg.ProjectedMonthlyExpense = avg.AvgDailyExpense * daysInMonth
	avg.ProjectedBalance = avg.ProjectedMonthlyIncome - avg.ProjectedMonthlyExpense
	return avg
}

func topExpenses(transactions []*models.Transaction, n int) []models.Transaction {
	expenses := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == dto.TypeExpense {
			expenses = append(expenses, *tx)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}

func cardsReport(cards []*models.CreditCard, now time.Time) dto.CardsReport {
	totals := AggregateCards(cards)
	report := dto.CardsReport{
		TotalCards:      len(cards),
		TotalLimit:      totals.TotalLimit,
		TotalDebt:       totals.TotalDebt,
		AvailableCredit: totals.TotalLimit - totals.TotalDebt,
		Utilization:     totals.Utilization,
	}

	var utilizationSum float64
	for _, c := range cards {
		view := buildCardView(c, now)
		utilizationSum += view.Utilization
		if view.Utilization >= 70 {
			report.HighUtilizationCards = append(report.HighUtilizationCards, view)
		}
		if view.DaysToPayment <= 7 {
			report.UpcomingPayments = append(report.UpcomingPayments, view)
		}
	}
	if len(cards) > 0 {
		report.AverageUtilization = utilizationSum / float64(len(cards))
	}

	switch {
	case report.Utilization < 30:
		report.HealthStatus = dto.HealthExcellent
	case report.Utilization < 50:
		report.HealthStatus = dto.HealthGood
	case report.Utilization < 70:
		report.HealthStatus = dto.HealthFair
	default:
		report.HealthStatus = dto.HealthPoor
	}
	return report
}

func subscriptionsReport(subscriptions []*models.Subscription, totals dto.SubscriptionTotals) dto.SubscriptionsReport {
	report := dto.SubscriptionsReport{SubscriptionTotals: totals}
	for _, sub := range subscriptions {
		if sub.Status == models.SubscriptionActive {
			report.Count++
		}
	}
	if report.Count > 0 {
		report.AveragePerSubscription = totals.MonthlyTotal / float64(report.Count)
	}

	var ranked []dto.CategoryBreakdownItem
	for category, amount := range totals.ByCategory {
		item := dto.CategoryBreakdownItem{Category: category, Amount: amount}
		if totals.MonthlyTotal > 0 {
			item.Percentage = amount / totals.MonthlyTotal * 100
		}
		ranked = append(ranked, item)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})
	report.ByCategoryRanked = ranked
	return report
}

func transactionsInMonth(transactions []*models.Transaction, month string) []*models.Transaction {
	var filtered []*models.Transaction
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, month) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// direction labels a percent change. Zero counts as "up" so a flat month
// doesn't render as a decline.
func direction(change float64) string {
	if change >= 0 {
		return "up"
	}
	return "down"
}
