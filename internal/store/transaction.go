package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

func (s *transactionStore) budgets(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("budgets")
}

func (s *transactionStore) List(ctx context.Context, uid string) ([]*models.Transaction, error) {
	iter := s.collection(uid).OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var txs []*models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
		}
		var t models.Transaction
		if err := doc.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		txs = append(txs, &t)
	}
	return txs, nil
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var t models.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &t, nil
}

// Create writes the transaction and, for expenses, increments the matching
// category budget's spent accumulator in the same Firestore transaction, so
// the two documents change together or not at all. A missing budget is not an
// error; the budget side is simply skipped. When more than one budget shares
// the category only the first match is adjusted.
func (s *transactionStore) Create(ctx context.Context, uid string, t *models.Transaction) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	txRef := s.collection(uid).Doc(t.TransactionID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		budgetRef, spent, err := s.matchBudget(tx, uid, t)
		if err != nil {
			return err
		}
		if err := tx.Create(txRef, t); err != nil {
			return err
		}
		if budgetRef == nil {
			return nil
		}
		return tx.Update(budgetRef, []firestore.Update{
			{Path: "spent", Value: spent + t.Amount},
			{Path: "updatedAt", Value: now},
		})
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("transaction already exists")
		}
		return errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	return nil
}

// Delete removes the transaction and reverses its effect on the matching
// budget, floored at zero, atomically.
func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	txRef := s.collection(uid).Doc(transactionID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(txRef)
		if err != nil {
			return err
		}
		var t models.Transaction
		if err := doc.DataTo(&t); err != nil {
			return err
		}

		budgetRef, spent, err := s.matchBudget(tx, uid, &t)
		if err != nil {
			return err
		}
		if err := tx.Delete(txRef); err != nil {
			return err
		}
		if budgetRef == nil {
			return nil
		}
		newSpent := spent - t.Amount
		if newSpent < 0 {
			newSpent = 0
		}
		return tx.Update(budgetRef, []firestore.Update{
			{Path: "spent", Value: newSpent},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("transaction not found")
		}
		return errs.NewDatabaseError("delete", "failed to delete transaction", err)
	}
	return nil
}

// matchBudget reads the first budget with the transaction's category inside
// the running transaction. Returns a nil ref for income transactions and when
// no budget matches.
func (s *transactionStore) matchBudget(tx *firestore.Transaction, uid string, t *models.Transaction) (*firestore.DocumentRef, float64, error) {
	if t.Type != dto.TypeExpense {
		return nil, 0, nil
	}

	query := s.budgets(uid).Where("category", "==", t.Category).Limit(1)
	docs, err := tx.Documents(query).GetAll()
	if err != nil {
		return nil, 0, err
	}
	if len(docs) == 0 {
		return nil, 0, nil
	}

	var b models.Budget
	if err := docs[0].DataTo(&b); err != nil {
		return nil, 0, err
	}
	return docs[0].Ref, b.Spent, nil
}
