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

type subscriptionStore struct {
	client *firestore.Client
}

func NewSubscriptionStore(client *firestore.Client) *subscriptionStore {
	return &subscriptionStore{client: client}
}

func (s *subscriptionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("subscriptions")
}

func (s *subscriptionStore) Create(ctx context.Context, uid string, sub *models.Subscription) error {
	now := time.Now()
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = now
	}
	sub.UpdatedAt = now
	_, err := s.collection(uid).Doc(sub.SubscriptionID).Set(ctx, sub)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create subscription", err)
	}
	return nil
}

func (s *subscriptionStore) List(ctx context.Context, uid string) ([]*models.Subscription, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list subscriptions", err)
	}
	subs := make([]*models.Subscription, 0, len(docs))
	for _, d := range docs {
		var sub models.Subscription
		if err := d.DataTo(&sub); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse subscription data", err)
		}
		subs = append(subs, &sub)
	}
	return subs, nil
}

func (s *subscriptionStore) Get(ctx context.Context, uid, subscriptionID string) (*models.Subscription, error) {
	doc, err := s.collection(uid).Doc(subscriptionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("subscription not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get subscription", err)
	}
	var sub models.Subscription
	if err := doc.DataTo(&sub); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse subscription data", err)
	}
	return &sub, nil
}

func (s *subscriptionStore) Update(ctx context.Context, uid string, sub *models.Subscription) error {
	sub.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(sub.SubscriptionID).Set(ctx, sub)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update subscription", err)
	}
	return nil
}

func (s *subscriptionStore) Delete(ctx context.Context, uid, subscriptionID string) error {
	_, err := s.collection(uid).Doc(subscriptionID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete subscription", err)
	}
	return nil
}
