package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/taxonomy"
	"github.com/lahh29/finnexus/pkg/logger"
)

type budgetBSStore interface {
	Create(ctx context.Context, uid string, b *models.Budget) error
	List(ctx context.Context, uid string) ([]*models.Budget, error)
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	Update(ctx context.Context, uid string, b *models.Budget) error
	ResetSpent(ctx context.Context, uid, budgetID string) error
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetService struct {
	store    budgetBSStore
	clockNow func() time.Time
}

func NewBudgetService(store budgetBSStore) *budgetService {
	return &budgetService{store: store, clockNow: time.Now}
}

func (s *budgetService) AddBudget(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("budget name is required")
	}
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	if !taxonomy.IsExpenseCategory(req.Category) {
		return nil, errs.NewValidationError("unknown expense category: " + req.Category)
	}
	period := req.Period
	if period == "" {
		period = models.BudgetMonthly
	}
	if !validBudgetPeriod(period) {
		return nil, errs.NewValidationError("unknown period: " + req.Period)
	}

	// One budget per category keeps the expense attribution unambiguous.
	existing, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Category == req.Category {
			return nil, errs.NewAlreadyExistsError("a budget for this category already exists")
		}
	}

	budget := &models.Budget{
		BudgetID:  uuid.New().String(),
		Name:      req.Name,
		Amount:    req.Amount,
		Category:  req.Category,
		Period:    period,
		StartDate: s.clockNow(),
	}
	if err := s.store.Create(ctx, uid, budget); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("budget added", "budget_id", budget.BudgetID, "category", budget.Category)
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, uid string) ([]dto.BudgetView, error) {
	budgets, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	views := make([]dto.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, buildBudgetView(b))
	}
	return views, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.NewValidationError("budget name is required")
		}
		budget.Name = *req.Name
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, errs.NewValidationError("amount must be greater than 0")
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		if !validBudgetPeriod(*req.Period) {
			return nil, errs.NewValidationError("unknown period: " + *req.Period)
		}
		budget.Period = *req.Period
	}

	if err := s.store.Update(ctx, uid, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// ResetBudget zeroes the spent accumulator and restarts the period.
func (s *budgetService) ResetBudget(ctx context.Context, uid, budgetID string) error {
	return s.store.ResetSpent(ctx, uid, budgetID)
}

func (s *budgetService) DeleteBudget(ctx context.Context, uid, budgetID string) error {
	return s.store.Delete(ctx, uid, budgetID)
}

func (s *budgetService) GetStats(ctx context.Context, uid string) (*dto.BudgetStats, error) {
	budgets, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	stats := &dto.BudgetStats{}
	for _, b := range budgets {
		stats.TotalBudget += b.Amount
		stats.TotalSpent += b.Spent
		if b.Spent > b.Amount {
			stats.OverBudgetCount++
			continue
		}
		if pct := percentUsed(b.Spent, b.Amount); pct >= 80 && pct < 100 {
			stats.NearLimitCount++
		}
	}
	stats.Remaining = stats.TotalBudget - stats.TotalSpent
	stats.PercentUsed = percentUsed(stats.TotalSpent, stats.TotalBudget)
	return stats, nil
}

func buildBudgetView(b *models.Budget) dto.BudgetView {
	return dto.BudgetView{
		Budget:      *b,
		Remaining:   b.Amount - b.Spent,
		PercentUsed: percentUsed(b.Spent, b.Amount),
	}
}

func percentUsed(spent, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return spent / amount * 100
}

func validBudgetPeriod(p string) bool {
	switch p {
	case models.BudgetWeekly, models.BudgetBiweekly, models.BudgetMonthly, models.BudgetYearly:
		return true
	}
	return false
}
