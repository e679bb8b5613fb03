package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
)

type goalStore struct {
	client *firestore.Client
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{client: client}
}

func (s *goalStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("savings_goals")
}

func (s *goalStore) Create(ctx context.Context, uid string, g *models.SavingsGoal) error {
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	_, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create goal", err)
	}
	return nil
}

func (s *goalStore) List(ctx context.Context, uid string) ([]*models.SavingsGoal, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list goals", err)
	}
	goals := make([]*models.SavingsGoal, 0, len(docs))
	for _, d := range docs {
		var g models.SavingsGoal
		if err := d.DataTo(&g); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
		}
		goals = append(goals, &g)
	}
	return goals, nil
}

func (s *goalStore) Get(ctx context.Context, uid, goalID string) (*models.SavingsGoal, error) {
	doc, err := s.collection(uid).Doc(goalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("goal not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get goal", err)
	}
	var g models.SavingsGoal
	if err := doc.DataTo(&g); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
	}
	return &g, nil
}

func (s *goalStore) Update(ctx context.Context, uid string, g *models.SavingsGoal) error {
	g.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update goal", err)
	}
	return nil
}

// AdjustAmount applies a deposit (positive) or withdrawal (negative) to the
// goal's saved amount in a read-modify-write transaction, floored at zero.
func (s *goalStore) AdjustAmount(ctx context.Context, uid, goalID string, delta float64) (*models.SavingsGoal, error) {
	ref := s.collection(uid).Doc(goalID)
	var out models.SavingsGoal

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&out); err != nil {
			return err
		}
		out.CurrentAmount += delta
		if out.CurrentAmount < 0 {
			out.CurrentAmount = 0
		}
		out.UpdatedAt = time.Now()
		return tx.Update(ref, []firestore.Update{
			{Path: "currentAmount", Value: out.CurrentAmount},
			{Path: "updatedAt", Value: out.UpdatedAt},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("goal not found")
		}
		return nil, errs.NewDatabaseError("update", "failed to adjust goal amount", err)
	}
	return &out, nil
}

func (s *goalStore) Delete(ctx context.Context, uid, goalID string) error {
	_, err := s.collection(uid).Doc(goalID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete goal", err)
	}
	return nil
}
