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

const txDateLayout = "2006-01-02"

// transactionTxStore is the Firestore storage interface for transactions.
// Create and Delete carry the budget consistency rule.
type transactionTxStore interface {
	List(ctx context.Context, uid string) ([]*models.Transaction, error)
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	Create(ctx context.Context, uid string, t *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionService struct {
	store    transactionTxStore
	clockNow func() time.Time
}

func NewTransactionService(store transactionTxStore) *transactionService {
	return &transactionService{store: store, clockNow: time.Now}
}

func (s *transactionService) ListTransactions(ctx context.Context, uid string) ([]*models.Transaction, error) {
	return s.store.List(ctx, uid)
}

func (s *transactionService) AddTransaction(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransaction(req); err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = s.clockNow().Format(txDateLayout)
	}

	t := &models.Transaction{
		TransactionID: uuid.New().String(),
		Amount:        req.Amount,
		Description:   req.Description,
		Type:          req.Type,
		Category:      taxonomy.Normalize(req.Category),
		Date:          date,
	}
	if err := s.store.Create(ctx, uid, t); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction recorded", "transaction_id", t.TransactionID, "type", t.Type, "category", t.Category)
	return t, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, uid, transactionID string) error {
	return s.store.Delete(ctx, uid, transactionID)
}

func validateTransaction(req dto.CreateTransactionRequest) error {
	if req.Amount <= 0 {
		return errs.NewValidationError("amount must be greater than 0")
	}
	switch req.Type {
	case dto.TypeIncome:
		if req.Category != "" && !taxonomy.IsIncomeCategory(req.Category) {
			return errs.NewValidationError("unknown income category: " + req.Category)
		}
	case dto.TypeExpense:
		if req.Category != "" && !taxonomy.IsExpenseCategory(req.Category) {
			return errs.NewValidationError("unknown expense category: " + req.Category)
		}
	default:
		return errs.NewValidationError(`type must be "income" or "expense"`)
	}
	if req.Date != "" {
		if _, err := time.Parse(txDateLayout, req.Date); err != nil {
			return errs.NewValidationError("date must be formatted YYYY-MM-DD")
		}
	}
	return nil
}
