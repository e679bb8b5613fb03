package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/pkg/helpers"
)

type fakeBudgetStore struct {
	budgets []*models.Budget
	created *models.Budget
	updated *models.Budget
	resetID string
	err     error
}

func (f *fakeBudgetStore) Create(_ context.Context, _ string, b *models.Budget) error {
	if f.err != nil {
		return f.err
	}
	f.created = b
	return nil
}

func (f *fakeBudgetStore) List(_ context.Context, _ string) ([]*models.Budget, error) {
	return f.budgets, f.err
}

func (f *fakeBudgetStore) Get(_ context.Context, _, id string) (*models.Budget, error) {
	for _, b := range f.budgets {
		if b.BudgetID == id {
			return b, nil
		}
	}
	return nil, errs.NewNotFoundError("budget not found")
}

func (f *fakeBudgetStore) Update(_ context.Context, _ string, b *models.Budget) error {
	f.updated = b
	return f.err
}

func (f *fakeBudgetStore) ResetSpent(_ context.Context, _, id string) error {
	f.resetID = id
	return f.err
}

func (f *fakeBudgetStore) Delete(_ context.Context, _, id string) error {
	return f.err
}

func TestAddBudgetDefaultsToMonthly(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store)

	budget, err := svc.AddBudget(helpers.TestCtx(), "uid1", dto.CreateBudgetRequest{
		Name:     "Groceries",
		Amount:   500,
		Category: "food",
	})
	if err != nil {
		t.Fatalf("AddBudget error: %v", err)
	}
	if budget.Period != models.BudgetMonthly {
		t.Fatalf("expected monthly default, got %q", budget.Period)
	}
	if budget.Spent != 0 {
		t.Fatalf("expected zero spent on a new budget, got %v", budget.Spent)
	}
	if store.created != budget {
		t.Fatal("expected the budget to be written to the store")
	}
}

func TestAddBudgetRejectsDuplicateCategory(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []*models.Budget{{BudgetID: "b1", Category: "food"}},
	}
	svc := NewBudgetService(store)

	_, err := svc.AddBudget(context.Background(), "uid1", dto.CreateBudgetRequest{
		Name:     "More groceries",
		Amount:   100,
		Category: "food",
	})
	var exists *errs.AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected already exists error, got %v", err)
	}
}

func TestAddBudgetValidation(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{})

	cases := []struct {
		name string
		req  dto.CreateBudgetRequest
	}{
		{"missing name", dto.CreateBudgetRequest{Amount: 100, Category: "food"}},
		{"zero amount", dto.CreateBudgetRequest{Name: "x", Category: "food"}},
		{"income category", dto.CreateBudgetRequest{Name: "x", Amount: 100, Category: "salary"}},
		{"bad period", dto.CreateBudgetRequest{Name: "x", Amount: 100, Category: "food", Period: "daily"}},
	}
	for _, tc := range cases {
		_, err := svc.AddBudget(context.Background(), "uid1", tc.req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListBudgetsDerivesPercentages(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []*models.Budget{
			{BudgetID: "b1", Amount: 200, Spent: 50},
			{BudgetID: "b2", Amount: 0, Spent: 10}, // degenerate, must not divide by zero
		},
	}
	svc := NewBudgetService(store)

	views, err := svc.ListBudgets(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("ListBudgets error: %v", err)
	}
	if views[0].Remaining != 150 || views[0].PercentUsed != 25 {
		t.Fatalf("view mismatch: %+v", views[0])
	}
	if views[1].PercentUsed != 0 {
		t.Fatalf("expected zero percent for zero amount, got %v", views[1].PercentUsed)
	}
}

func TestBudgetStats(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []*models.Budget{
			{Amount: 100, Spent: 85},  // near limit
			{Amount: 100, Spent: 120}, // over budget
			{Amount: 100, Spent: 20},
		},
	}
	svc := NewBudgetService(store)

	stats, err := svc.GetStats(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.TotalBudget != 300 || stats.TotalSpent != 225 || stats.Remaining != 75 {
		t.Fatalf("totals mismatch: %+v", stats)
	}
	if stats.PercentUsed != 75 {
		t.Fatalf("percent used mismatch: %v", stats.PercentUsed)
	}
	if stats.NearLimitCount != 1 || stats.OverBudgetCount != 1 {
		t.Fatalf("counts mismatch: %+v", stats)
	}
}

func TestResetBudget(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store)

	if err := svc.ResetBudget(context.Background(), "uid1", "b1"); err != nil {
		t.Fatalf("ResetBudget error: %v", err)
	}
	if store.resetID != "b1" {
		t.Fatalf("wrong budget reset: %q", store.resetID)
	}
}
