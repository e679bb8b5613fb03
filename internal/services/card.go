package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/recurrence"
	"github.com/lahh29/finnexus/internal/taxonomy"
	"github.com/lahh29/finnexus/pkg/logger"
)

type cardCSStore interface {
	Create(ctx context.Context, uid string, card *models.CreditCard) error
	List(ctx context.Context, uid string) ([]*models.CreditCard, error)
	Get(ctx context.Context, uid, cardID string) (*models.CreditCard, error)
	UpdateDebt(ctx context.Context, uid, cardID string, debt float64) error
	Delete(ctx context.Context, uid, cardID string) error
}

type cardService struct {
	store    cardCSStore
	clockNow func() time.Time
}

func NewCardService(store cardCSStore) *cardService {
	return &cardService{store: store, clockNow: time.Now}
}

func (s *cardService) AddCard(ctx context.Context, uid string, req dto.CreateCardRequest) (*models.CreditCard, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("card name is required")
	}
	if req.Limit <= 0 {
		return nil, errs.NewValidationError("limit must be greater than 0")
	}
	if req.CurrentDebt < 0 {
		return nil, errs.NewValidationError("current debt cannot be negative")
	}
	if req.CurrentDebt > req.Limit {
		return nil, errs.NewValidationError("current debt cannot exceed the card limit")
	}
	if req.CutoffDay < 1 || req.CutoffDay > 31 {
		return nil, errs.NewValidationError("cutoff day must be between 1 and 31")
	}
	if req.PaymentDay < 1 || req.PaymentDay > 31 {
		return nil, errs.NewValidationError("payment day must be between 1 and 31")
	}

	card := &models.CreditCard{
		CardID:      uuid.New().String(),
		Name:        req.Name,
		Limit:       req.Limit,
		CurrentDebt: req.CurrentDebt,
		CutoffDay:   req.CutoffDay,
		PaymentDay:  req.PaymentDay,
		ColorTag:    taxonomy.CardGradients[rand.Intn(len(taxonomy.CardGradients))],
	}
	if err := s.store.Create(ctx, uid, card); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("card added", "card_id", card.CardID, "name", card.Name)
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, uid string) ([]dto.CardView, error) {
	cards, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.clockNow()
	views := make([]dto.CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, buildCardView(c, now))
	}
	return views, nil
}

func (s *cardService) UpdateDebt(ctx context.Context, uid, cardID string, req dto.UpdateCardDebtRequest) (*models.CreditCard, error) {
	card, err := s.store.Get(ctx, uid, cardID)
	if err != nil {
		return nil, err
	}
	if req.CurrentDebt < 0 {
		return nil, errs.NewValidationError("current debt cannot be negative")
	}
	if card.Limit > 0 && req.CurrentDebt > card.Limit {
		return nil, errs.NewValidationError("current debt cannot exceed the card limit")
	}
	if err := s.store.UpdateDebt(ctx, uid, cardID, req.CurrentDebt); err != nil {
		return nil, err
	}
	card.CurrentDebt = req.CurrentDebt
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, uid, cardID string) error {
	return s.store.Delete(ctx, uid, cardID)
}

// buildCardView derives the countdowns and utilization for one card. Cutoff
// and payment days cycle monthly regardless of the card's billing specifics.
func buildCardView(c *models.CreditCard, now time.Time) dto.CardView {
	view := dto.CardView{CreditCard: *c}

	if occ, err := recurrence.NextOccurrence(now, c.CutoffDay, recurrence.FrequencyMonthly); err == nil {
		view.DaysToCutoff = occ.DaysLeft
	}
	if occ, err := recurrence.NextOccurrence(now, c.PaymentDay, recurrence.FrequencyMonthly); err == nil {
		view.DaysToPayment = occ.DaysLeft
	}

	view.Utilization = CardUtilization(c.CurrentDebt, c.Limit)
	view.UtilizationLevel = dto.UtilizationNormal
	if view.Utilization > 80 {
		view.UtilizationLevel = dto.UtilizationHigh
	}
	return view
}

// CardUtilization returns debt as a percentage of limit, 0 for a zero limit.
func CardUtilization(debt, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return debt / limit * 100
}
