package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/recurrence"
	"github.com/lahh29/finnexus/pkg/helpers"
)

type fakeSubscriptionStore struct {
	subs      []*models.Subscription
	created   *models.Subscription
	updated   *models.Subscription
	deletedID string
	err       error
}

func (f *fakeSubscriptionStore) Create(_ context.Context, _ string, sub *models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	f.created = sub
	return nil
}

func (f *fakeSubscriptionStore) List(_ context.Context, _ string) ([]*models.Subscription, error) {
	return f.subs, f.err
}

func (f *fakeSubscriptionStore) Get(_ context.Context, _, id string) (*models.Subscription, error) {
	for _, sub := range f.subs {
		if sub.SubscriptionID == id {
			return sub, nil
		}
	}
	return nil, errs.NewNotFoundError("subscription not found")
}

func (f *fakeSubscriptionStore) Update(_ context.Context, _ string, sub *models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	f.updated = sub
	return nil
}

func (f *fakeSubscriptionStore) Delete(_ context.Context, _, id string) error {
	f.deletedID = id
	return f.err
}

func TestAddSubscriptionDefaults(t *testing.T) {
	store := &fakeSubscriptionStore{}
	svc := NewSubscriptionService(store)

	sub, err := svc.AddSubscription(helpers.TestCtx(), "uid1", dto.CreateSubscriptionRequest{
		Name:       "Streaming",
		Amount:     12,
		PaymentDay: 5,
	})
	if err != nil {
		t.Fatalf("AddSubscription error: %v", err)
	}
	if sub.Frequency != recurrence.FrequencyMonthly {
		t.Fatalf("expected monthly default, got %q", sub.Frequency)
	}
	if sub.Status != models.SubscriptionActive {
		t.Fatalf("expected active status, got %q", sub.Status)
	}
	if sub.Category != "other" {
		t.Fatalf("expected category fallback, got %q", sub.Category)
	}
	if store.created != sub {
		t.Fatal("expected the subscription to be written to the store")
	}
}

func TestAddSubscriptionValidation(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionStore{})

	cases := []struct {
		name string
		req  dto.CreateSubscriptionRequest
	}{
		{"missing name", dto.CreateSubscriptionRequest{Amount: 5, PaymentDay: 1}},
		{"zero amount", dto.CreateSubscriptionRequest{Name: "x", PaymentDay: 1}},
		{"day out of range", dto.CreateSubscriptionRequest{Name: "x", Amount: 5, PaymentDay: 0}},
		{"bad frequency", dto.CreateSubscriptionRequest{Name: "x", Amount: 5, PaymentDay: 1, Frequency: "daily"}},
	}
	for _, tc := range cases {
		_, err := svc.AddSubscription(context.Background(), "uid1", tc.req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListSubscriptionsSortsByDaysLeft(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []*models.Subscription{
			{SubscriptionID: "far", Amount: 10, PaymentDay: 28, Frequency: recurrence.FrequencyMonthly, Status: models.SubscriptionActive},
			{SubscriptionID: "near", Amount: 10, PaymentDay: 17, Frequency: recurrence.FrequencyMonthly, Status: models.SubscriptionActive},
			{SubscriptionID: "gone", Amount: 10, PaymentDay: 16, Frequency: recurrence.FrequencyMonthly, Status: models.SubscriptionCancelled},
		},
	}
	svc := NewSubscriptionService(store)
	svc.clockNow = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	views, err := svc.ListSubscriptions(context.Background(), "uid1")
	if err != nil {
		t.Fatalf("ListSubscriptions error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected cancelled subscription to be excluded, got %d views", len(views))
	}
	if views[0].SubscriptionID != "near" || views[1].SubscriptionID != "far" {
		t.Fatalf("sort order mismatch: %s, %s", views[0].SubscriptionID, views[1].SubscriptionID)
	}
	if views[0].DaysLeft != 2 || views[0].Urgency != recurrence.UrgencyUrgent {
		t.Fatalf("schedule mismatch: %+v", views[0])
	}
	if views[0].NextPaymentDate != "2025-06-17" {
		t.Fatalf("next payment date mismatch: %q", views[0].NextPaymentDate)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []*models.Subscription{
			{SubscriptionID: "s1", Status: models.SubscriptionActive},
		},
	}
	svc := NewSubscriptionService(store)

	sub, err := svc.UpdateStatus(context.Background(), "uid1", "s1", models.SubscriptionPaused)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if sub.Status != models.SubscriptionPaused || store.updated != sub {
		t.Fatalf("status not persisted: %+v", sub)
	}

	_, err = svc.UpdateStatus(context.Background(), "uid1", "s1", "archived")
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestMarkPaidStampsLastPaidDate(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []*models.Subscription{
			{SubscriptionID: "s1", Status: models.SubscriptionActive},
			{SubscriptionID: "s2", Status: models.SubscriptionCancelled},
		},
	}
	svc := NewSubscriptionService(store)
	svc.clockNow = func() time.Time { return time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC) }

	sub, err := svc.MarkPaid(helpers.TestCtx(), "uid1", "s1")
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if sub.LastPaidDate != "2025-06-15" || store.updated != sub {
		t.Fatalf("last paid date not persisted: %+v", sub)
	}

	_, err = svc.MarkPaid(helpers.TestCtx(), "uid1", "s2")
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for cancelled subscription, got %v", err)
	}

	_, err = svc.MarkPaid(helpers.TestCtx(), "uid1", "missing")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateSubscriptionPartial(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []*models.Subscription{
			{SubscriptionID: "s1", Name: "Old", Amount: 10, PaymentDay: 5, Frequency: recurrence.FrequencyMonthly},
		},
	}
	svc := NewSubscriptionService(store)

	sub, err := svc.UpdateSubscription(context.Background(), "uid1", "s1", dto.UpdateSubscriptionRequest{
		Amount: helpers.Ptr(15.0),
	})
	if err != nil {
		t.Fatalf("UpdateSubscription error: %v", err)
	}
	if sub.Amount != 15 || sub.Name != "Old" {
		t.Fatalf("partial update mismatch: %+v", sub)
	}
}
