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

type cardStore struct {
	client *firestore.Client
}

func NewCardStore(client *firestore.Client) *cardStore {
	return &cardStore{client: client}
}

func (s *cardStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("credit_cards")
}

func (s *cardStore) Create(ctx context.Context, uid string, card *models.CreditCard) error {
	now := time.Now()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now
	_, err := s.collection(uid).Doc(card.CardID).Set(ctx, card)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create card", err)
	}
	return nil
}

func (s *cardStore) List(ctx context.Context, uid string) ([]*models.CreditCard, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list cards", err)
	}
	cards := make([]*models.CreditCard, 0, len(docs))
	for _, d := range docs {
		var c models.CreditCard
		if err := d.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse card data", err)
		}
		cards = append(cards, &c)
	}
	return cards, nil
}

func (s *cardStore) Get(ctx context.Context, uid, cardID string) (*models.CreditCard, error) {
	doc, err := s.collection(uid).Doc(cardID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("card not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get card", err)
	}
	var c models.CreditCard
	if err := doc.DataTo(&c); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse card data", err)
	}
	return &c, nil
}

func (s *cardStore) UpdateDebt(ctx context.Context, uid, cardID string, debt float64) error {
	_, err := s.collection(uid).Doc(cardID).Update(ctx, []firestore.Update{
		{Path: "currentDebt", Value: debt},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("card not found")
		}
		return errs.NewDatabaseError("update", "failed to update card debt", err)
	}
	return nil
}

func (s *cardStore) Delete(ctx context.Context, uid, cardID string) error {
	_, err := s.collection(uid).Doc(cardID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete card", err)
	}
	return nil
}
