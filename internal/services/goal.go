package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/taxonomy"
	"github.com/lahh29/finnexus/pkg/helpers"
	"github.com/lahh29/finnexus/pkg/logger"
)

type goalGSStore interface {
	Create(ctx context.Context, uid string, g *models.SavingsGoal) error
	List(ctx context.Context, uid string) ([]*models.SavingsGoal, error)
	Get(ctx context.Context, uid, goalID string) (*models.SavingsGoal, error)
	Update(ctx context.Context, uid string, g *models.SavingsGoal) error
	AdjustAmount(ctx context.Context, uid, goalID string, delta float64) (*models.SavingsGoal, error)
	Delete(ctx context.Context, uid, goalID string) error
}

type goalService struct {
	store    goalGSStore
	clockNow func() time.Time
}

func NewGoalService(store goalGSStore) *goalService {
	return &goalService{store: store, clockNow: time.Now}
}

func (s *goalService) AddGoal(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.SavingsGoal, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("goal name is required")
	}
	if req.TargetAmount <= 0 {
		return nil, errs.NewValidationError("target amount must be greater than 0")
	}

	var targetDate *time.Time
	if req.TargetDate != "" {
		parsed, err := time.Parse(txDateLayout, req.TargetDate)
		if err != nil {
			return nil, errs.NewValidationError("target date must be formatted YYYY-MM-DD")
		}
		targetDate = helpers.Ptr(parsed)
	}

	icon := taxonomy.GoalIconByID(req.Icon)
	goal := &models.SavingsGoal{
		GoalID:       uuid.New().String(),
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
		Icon:         icon.ID,
		Color:        icon.Color,
	}
	if err := s.store.Create(ctx, uid, goal); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("savings goal added", "goal_id", goal.GoalID, "name", goal.Name)
	return goal, nil
}

// ListGoals derives progress for each goal and orders incomplete goals first,
// most progressed on top.
func (s *goalService) ListGoals(ctx context.Context, uid string) ([]dto.GoalView, error) {
	goals, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.clockNow()
	views := make([]dto.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, buildGoalView(g, now))
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].IsCompleted != views[j].IsCompleted {
			return !views[i].IsCompleted
		}
		return views[i].Progress > views[j].Progress
	})
	return views, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.SavingsGoal, error) {
	goal, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.NewValidationError("goal name is required")
		}
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount <= 0 {
			return nil, errs.NewValidationError("target amount must be greater than 0")
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Icon != nil {
		icon := taxonomy.GoalIconByID(*req.Icon)
		goal.Icon = icon.ID
		goal.Color = icon.Color
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			goal.TargetDate = nil
		} else {
			parsed, err := time.Parse(txDateLayout, *req.TargetDate)
			if err != nil {
				return nil, errs.NewValidationError("target date must be formatted YYYY-MM-DD")
			}
			goal.TargetDate = helpers.Ptr(parsed)
		}
	}

	if err := s.store.Update(ctx, uid, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Deposit(ctx context.Context, uid, goalID string, amount float64) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	return s.store.AdjustAmount(ctx, uid, goalID, amount)
}

func (s *goalService) Withdraw(ctx context.Context, uid, goalID string, amount float64) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	return s.store.AdjustAmount(ctx, uid, goalID, -amount)
}

func (s *goalService) DeleteGoal(ctx context.Context, uid, goalID string) error {
	return s.store.Delete(ctx, uid, goalID)
}

func (s *goalService) GetStats(ctx context.Context, uid string) (*dto.GoalStats, error) {
	goals, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	stats := &dto.GoalStats{TotalGoals: len(goals)}
	for _, g := range goals {
		stats.TotalTarget += g.TargetAmount
		stats.TotalSaved += g.CurrentAmount
		if g.CurrentAmount >= g.TargetAmount {
			stats.CompletedGoals++
		} else {
			stats.ActiveGoals++
		}
	}
	stats.TotalRemaining = stats.TotalTarget - stats.TotalSaved
	if stats.TotalRemaining < 0 {
		stats.TotalRemaining = 0
	}
	if stats.TotalTarget > 0 {
		stats.OverallProgress = goalProgress(stats.TotalSaved, stats.TotalTarget)
	}
	return stats, nil
}

func buildGoalView(g *models.SavingsGoal, now time.Time) dto.GoalView {
	view := dto.GoalView{
		SavingsGoal: *g,
		Progress:    goalProgress(g.CurrentAmount, g.TargetAmount),
		IsCompleted: g.CurrentAmount >= g.TargetAmount,
	}

	if g.TargetDate != nil {
		days := int(g.TargetDate.Sub(midnightOf(now)).Hours() / 24)
		view.DaysLeft = helpers.Ptr(days)
		view.IsOverdue = days < 0 && !view.IsCompleted

		remaining := g.TargetAmount - g.CurrentAmount
		if remaining > 0 && days > 0 {
			view.MonthlyNeeded = remaining / (float64(days) / 30)
		}
	}
	return view
}

// goalProgress returns saved over target as a percentage, capped at 100.
func goalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target * 100
	if p > 100 {
		p = 100
	}
	return p
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
