package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/recurrence"
	"github.com/lahh29/finnexus/internal/taxonomy"
	"github.com/lahh29/finnexus/pkg/logger"
)

type subscriptionSSStore interface {
	Create(ctx context.Context, uid string, sub *models.Subscription) error
	List(ctx context.Context, uid string) ([]*models.Subscription, error)
	Get(ctx context.Context, uid, subscriptionID string) (*models.Subscription, error)
	Update(ctx context.Context, uid string, sub *models.Subscription) error
	Delete(ctx context.Context, uid, subscriptionID string) error
}

type subscriptionService struct {
	store    subscriptionSSStore
	clockNow func() time.Time
}

func NewSubscriptionService(store subscriptionSSStore) *subscriptionService {
	return &subscriptionService{store: store, clockNow: time.Now}
}

func (s *subscriptionService) AddSubscription(ctx context.Context, uid string, req dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("subscription name is required")
	}
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	if req.PaymentDay < 1 || req.PaymentDay > 31 {
		return nil, errs.NewValidationError("payment day must be between 1 and 31")
	}
	freq := req.Frequency
	if freq == "" {
		freq = recurrence.FrequencyMonthly
	}
	if !freq.Valid() {
		return nil, errs.NewValidationError("unknown frequency: " + string(req.Frequency))
	}

	sub := &models.Subscription{
		SubscriptionID: uuid.New().String(),
		Name:           req.Name,
		Amount:         req.Amount,
		PaymentDay:     req.PaymentDay,
		Category:       taxonomy.Normalize(req.Category),
		Frequency:      freq,
		Status:         models.SubscriptionActive,
	}
	if err := s.store.Create(ctx, uid, sub); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("subscription added", "subscription_id", sub.SubscriptionID, "name", sub.Name)
	return sub, nil
}

// ListSubscriptions resolves each subscription's next payment and sorts by
// how soon it is due. Cancelled subscriptions are excluded.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, uid string) ([]dto.SubscriptionView, error) {
	subs, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := s.clockNow()
	views := make([]dto.SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		if sub.Status == models.SubscriptionCancelled {
			continue
		}
		views = append(views, buildSubscriptionView(sub, now))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DaysLeft < views[j].DaysLeft
	})
	return views, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, uid, subscriptionID string, req dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	sub, err := s.store.Get(ctx, uid, subscriptionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.NewValidationError("subscription name is required")
		}
		sub.Name = *req.Name
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, errs.NewValidationError("amount must be greater than 0")
		}
		sub.Amount = *req.Amount
	}
	if req.PaymentDay != nil {
		if *req.PaymentDay < 1 || *req.PaymentDay > 31 {
			return nil, errs.NewValidationError("payment day must be between 1 and 31")
		}
		sub.PaymentDay = *req.PaymentDay
	}
	if req.Category != nil {
		sub.Category = taxonomy.Normalize(*req.Category)
	}
	if req.Frequency != nil {
		if !req.Frequency.Valid() {
			return nil, errs.NewValidationError("unknown frequency: " + string(*req.Frequency))
		}
		sub.Frequency = *req.Frequency
	}

	if err := s.store.Update(ctx, uid, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) UpdateStatus(ctx context.Context, uid, subscriptionID, status string) (*models.Subscription, error) {
	switch status {
	case models.SubscriptionActive, models.SubscriptionPaused, models.SubscriptionCancelled:
	default:
		return nil, errs.NewValidationError("unknown status: " + status)
	}

	sub, err := s.store.Get(ctx, uid, subscriptionID)
	if err != nil {
		return nil, err
	}
	sub.Status = status
	if err := s.store.Update(ctx, uid, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// MarkPaid records today's date as the subscription's last payment.
func (s *subscriptionService) MarkPaid(ctx context.Context, uid, subscriptionID string) (*models.Subscription, error) {
	sub, err := s.store.Get(ctx, uid, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubscriptionCancelled {
		return nil, errs.NewValidationError("cannot mark a cancelled subscription as paid")
	}

	sub.LastPaidDate = s.clockNow().Format(txDateLayout)
	if err := s.store.Update(ctx, uid, sub); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("subscription payment recorded", "subscription_id", sub.SubscriptionID, "paid_date", sub.LastPaidDate)
	return sub, nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, uid, subscriptionID string) error {
	return s.store.Delete(ctx, uid, subscriptionID)
}

func buildSubscriptionView(sub *models.Subscription, now time.Time) dto.SubscriptionView {
	view := dto.SubscriptionView{
		Subscription:      *sub,
		MonthlyEquivalent: recurrence.MonthlyEquivalent(sub.Amount, sub.Frequency),
	}
	occ, err := recurrence.NextOccurrence(now, sub.PaymentDay, sub.Frequency)
	if err != nil {
		// Stored frequency or day no longer valid; surface without a schedule.
		view.Urgency = recurrence.UrgencyNormal
		return view
	}
	view.NextPaymentDate = occ.NextDate.Format(txDateLayout)
	view.DaysLeft = occ.DaysLeft
	view.Urgency = occ.Urgency
	return view
}
