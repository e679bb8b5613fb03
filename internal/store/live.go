package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
)

// liveCollections maps subscribable names onto Firestore subcollections.
var liveCollections = map[string]string{
	dto.LiveTransactions:  "transactions",
	dto.LiveCards:         "credit_cards",
	dto.LiveSubscriptions: "subscriptions",
	dto.LiveBudgets:       "budgets",
	dto.LiveGoals:         "savings_goals",
}

type liveStore struct {
	client *firestore.Client
}

func NewLiveStore(client *firestore.Client) *liveStore {
	return &liveStore{client: client}
}

// Watch subscribes to a user collection and emits the full document set on
// every change, starting with the current snapshot. Both channels close when
// ctx is cancelled or the snapshot stream fails; a stream failure is reported
// on the error channel first.
func (s *liveStore) Watch(ctx context.Context, uid, collection string) (<-chan []map[string]any, <-chan error, error) {
	name, ok := liveCollections[collection]
	if !ok {
		return nil, nil, errs.NewValidationError("unknown collection: " + collection)
	}

	snaps := s.client.Collection("users").Doc(uid).Collection(name).Snapshots(ctx)
	docCh := make(chan []map[string]any)
	errCh := make(chan error, 1)

	go func() {
		defer close(docCh)
		defer close(errCh)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					errCh <- errs.NewDatabaseError("watch", "snapshot stream failed", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				errCh <- errs.NewDatabaseError("watch", "failed to read snapshot documents", err)
				return
			}
			out := make([]map[string]any, 0, len(docs))
			for _, d := range docs {
				out = append(out, d.Data())
			}
			select {
			case docCh <- out:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docCh, errCh, nil
}
