package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/pkg/helpers"
)

type fakeCardStore struct {
	cards     []*models.CreditCard
	created   *models.CreditCard
	debtID    string
	debt      float64
	deletedID string
	err       error
}

func (f *fakeCardStore) Create(_ context.Context, _ string, card *models.CreditCard) error {
	if f.err != nil {
		return f.err
	}
	f.created = card
	return nil
}

func (f *fakeCardStore) List(_ context.Context, _ string) ([]*models.CreditCard, error) {
	return f.cards, f.err
}

func (f *fakeCardStore) Get(_ context.Context, _, cardID string) (*models.CreditCard, error) {
	for _, c := range f.cards {
		if c.CardID == cardID {
			return c, nil
		}
	}
	return nil, errs.NewNotFoundError("card not found")
}

func (f *fakeCardStore) UpdateDebt(_ context.Context, _, cardID string, debt float64) error {
	f.debtID = cardID
	f.debt = debt
	return f.err
}

func (f *fakeCardStore) Delete(_ context.Context, _, cardID string) error {
	f.deletedID = cardID
	return f.err
}

func TestAddCard(t *testing.T) {
	store := &fakeCardStore{}
	svc := NewCardService(store)

	card, err := svc.AddCard(helpers.TestCtx(), "uid1", dto.CreateCardRequest{
		Name:       "Visa",
		Limit:      1000,
		CutoffDay:  10,
		PaymentDay: 25,
	})
	if err != nil {
		t.Fatalf("AddCard error: %v", err)
	}
	if card.CardID == "" {
		t.Fatal("expected a generated card id")
	}
	if card.ColorTag == "" {
		t.Fatal("expected a color tag to be assigned")
	}
	if store.created != card {
		t.Fatal("expected the card to be written to the store")
	}
}

func TestAddCardValidation(t *testing.T) {
	svc := NewCardService(&fakeCardStore{})

	cases := []struct {
		name string
		req  dto.CreateCardRequest
	}{
		{"missing name", dto.CreateCardRequest{Limit: 100, CutoffDay: 1, PaymentDay: 1}},
		{"negative limit", dto.CreateCardRequest{Name: "x", Limit: -1, CutoffDay: 1, PaymentDay: 1}},
		{"zero limit", dto.CreateCardRequest{Name: "x", Limit: 0, CutoffDay: 1, PaymentDay: 1}},
		{"negative debt", dto.CreateCardRequest{Name: "x", Limit: 100, CurrentDebt: -1, CutoffDay: 1, PaymentDay: 1}},
		{"debt over limit", dto.CreateCardRequest{Name: "x", Limit: 1000, CurrentDebt: 5000, CutoffDay: 1, PaymentDay: 1}},
		{"cutoff out of range", dto.CreateCardRequest{Name: "x", Limit: 100, CutoffDay: 0, PaymentDay: 1}},
		{"payment out of range", dto.CreateCardRequest{Name: "x", Limit: 100, CutoffDay: 1, PaymentDay: 32}},
	}
	for _, tc := range cases {
		_, err := svc.AddCard(context.Background(), "uid1", tc.req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListCardsDerivesCountdowns(t *testing.T) {
	store := &fakeCardStore{
		cards: []*models.CreditCard{
			{CardID: "c1", Limit: 1000, CurrentDebt: 200, CutoffDay: 20, PaymentDay: 25},
		},
	}
	svc := NewCardService(store)
	svc.clockNow = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	views, err := svc.ListCards(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("ListCards error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views length mismatch: got %d", len(views))
	}
	v := views[0]
	if v.DaysToCutoff != 5 || v.DaysToPayment != 10 {
		t.Fatalf("countdown mismatch: cutoff=%d payment=%d", v.DaysToCutoff, v.DaysToPayment)
	}
	if v.Utilization != 20 || v.UtilizationLevel != dto.UtilizationNormal {
		t.Fatalf("utilization mismatch: %v %q", v.Utilization, v.UtilizationLevel)
	}
}

func TestUpdateDebtBounds(t *testing.T) {
	store := &fakeCardStore{
		cards: []*models.CreditCard{{CardID: "c1", Limit: 500, CurrentDebt: 100}},
	}
	svc := NewCardService(store)

	_, err := svc.UpdateDebt(context.Background(), "uid1", "c1", dto.UpdateCardDebtRequest{CurrentDebt: 600})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for debt over limit, got %v", err)
	}

	card, err := svc.UpdateDebt(context.Background(), "uid1", "c1", dto.UpdateCardDebtRequest{CurrentDebt: 450})
	if err != nil {
		t.Fatalf("UpdateDebt error: %v", err)
	}
	if card.CurrentDebt != 450 || store.debt != 450 || store.debtID != "c1" {
		t.Fatalf("debt not stored: %+v", store)
	}
}

func TestUpdateDebtUnknownCard(t *testing.T) {
	svc := NewCardService(&fakeCardStore{})
	_, err := svc.UpdateDebt(context.Background(), "uid1", "nope", dto.UpdateCardDebtRequest{CurrentDebt: 1})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
