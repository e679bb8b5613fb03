package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
)

type fakeTransactionStore struct {
	txs       []*models.Transaction
	created   *models.Transaction
	deletedID string
	err       error
}

func (f *fakeTransactionStore) List(_ context.Context, _ string) ([]*models.Transaction, error) {
	return f.txs, f.err
}

func (f *fakeTransactionStore) Get(_ context.Context, _, id string) (*models.Transaction, error) {
	for _, tx := range f.txs {
		if tx.TransactionID == id {
			return tx, nil
		}
	}
	return nil, errs.NewNotFoundError("transaction not found")
}

func (f *fakeTransactionStore) Create(_ context.Context, _ string, t *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.created = t
	return nil
}

func (f *fakeTransactionStore) Delete(_ context.Context, _, id string) error {
	f.deletedID = id
	return f.err
}

func TestAddTransaction(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store)
	svc.clockNow = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	got, err := svc.AddTransaction(context.Background(), "uid1", dto.CreateTransactionRequest{
		Amount:   50,
		Type:     dto.TypeExpense,
		Category: "food",
	})
	if err != nil {
		t.Fatalf("AddTransaction error: %v", err)
	}
	if got.TransactionID == "" {
		t.Fatal("expected a generated transaction id")
	}
	if got.Date != "2025-06-15" {
		t.Fatalf("expected date to default to today, got %q", got.Date)
	}
	if store.created != got {
		t.Fatal("expected the transaction to be written to the store")
	}
}

func TestAddTransactionNormalizesCategory(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store)

	got, err := svc.AddTransaction(context.Background(), "uid1", dto.CreateTransactionRequest{
		Amount: 10,
		Type:   dto.TypeExpense,
		Date:   "2025-06-01",
	})
	if err != nil {
		t.Fatalf("AddTransaction error: %v", err)
	}
	if got.Category != "other" {
		t.Fatalf("expected empty category to normalize to other, got %q", got.Category)
	}
}

func TestAddTransactionValidation(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionStore{})

	cases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"zero amount", dto.CreateTransactionRequest{Amount: 0, Type: dto.TypeExpense}},
		{"negative amount", dto.CreateTransactionRequest{Amount: -5, Type: dto.TypeIncome}},
		{"bad type", dto.CreateTransactionRequest{Amount: 5, Type: "transfer"}},
		{"income category on expense", dto.CreateTransactionRequest{Amount: 5, Type: dto.TypeExpense, Category: "salary"}},
		{"expense category on income", dto.CreateTransactionRequest{Amount: 5, Type: dto.TypeIncome, Category: "food"}},
		{"bad date", dto.CreateTransactionRequest{Amount: 5, Type: dto.TypeExpense, Date: "15/06/2025"}},
	}
	for _, tc := range cases {
		_, err := svc.AddTransaction(context.Background(), "uid1", tc.req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestDeleteTransaction(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store)

	if err := svc.DeleteTransaction(context.Background(), "uid1", "t9"); err != nil {
		t.Fatalf("DeleteTransaction error: %v", err)
	}
	if store.deletedID != "t9" {
		t.Fatalf("wrong id deleted: %q", store.deletedID)
	}
}
