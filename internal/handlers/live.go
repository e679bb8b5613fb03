package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/middleware"
	"github.com/lahh29/finnexus/internal/response"
	"github.com/lahh29/finnexus/pkg/logger"
)

const (
	liveWriteTimeout = 10 * time.Second
	livePingInterval = 30 * time.Second
)

type LiveService interface {
	Stream(ctx context.Context, uid, collection string) (<-chan dto.LiveEvent, <-chan error, error)
}

type liveHandlers struct {
	ResponseHandler response.ResponseHandler
	LiveSvc         LiveService
	upgrader        websocket.Upgrader
}

func NewLiveHandlers(deps *Deps) *liveHandlers {
	return &liveHandlers{
		ResponseHandler: deps.ResponseHandler,
		LiveSvc:         deps.LiveSvc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *liveHandlers) LiveRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Stream)
	return r
}

// Stream upgrades the request to a WebSocket and pushes a snapshot of the
// requested collection on every change. The collection is chosen with the
// ?collection= query parameter; transactions by default.
func (h *liveHandlers) Stream(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	collection := r.URL.Query().Get("collection")
	if collection == "" {
		collection = dto.LiveTransactions
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, errCh, err := h.LiveSvc.Stream(ctx, uid, collection)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}
	defer conn.Close()

	log := logger.FromContext(ctx)
	log.Info("live stream opened", "collection", collection)

	// Read pump: the client sends nothing meaningful; reading surfaces the
	// close frame so the watch can be torn down.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(livePingInterval)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Error("live stream write failed", "error", err)
				return
			}
		case err, ok := <-errCh:
			if ok && err != nil {
				log.Error("live stream watch failed", "error", err)
			}
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
