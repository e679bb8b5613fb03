package services

import (
	"context"
	"time"

	"github.com/lahh29/finnexus/internal/dto"
)

type liveLSStore interface {
	Watch(ctx context.Context, uid, collection string) (<-chan []map[string]any, <-chan error, error)
}

type liveService struct {
	store    liveLSStore
	clockNow func() time.Time
}

func NewLiveService(store liveLSStore) *liveService {
	return &liveService{store: store, clockNow: time.Now}
}

// Stream wraps the store's snapshot feed as timestamped events. The channels
// close when ctx is cancelled or the underlying stream fails.
func (s *liveService) Stream(ctx context.Context, uid, collection string) (<-chan dto.LiveEvent, <-chan error, error) {
	docCh, errCh, err := s.store.Watch(ctx, uid, collection)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan dto.LiveEvent)
	go func() {
		defer close(events)
		for docs := range docCh {
			event := dto.LiveEvent{
				Collection: collection,
				Data:       docs,
				At:         s.clockNow(),
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, errCh, nil
}
