package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"emily-backend/internal/handlers"
	"emily-backend/internal/middleware"
	"emily-backend/internal/websocket"
)

func New(
	chatHandler *handlers.ChatHandler,
	archiveHandler *handlers.ArchiveHandler,
	jwtAuth *middleware.JWTAuth,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Message rate limiter (30 req/min per IP), coarser than the per-session
	// cooldown inside the pipeline
	messageLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Session Routes ────
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", chatHandler.CreateSession)
			r.Get("/{id}/messages", chatHandler.ListMessages)
			r.Delete("/{id}/messages", chatHandler.ClearMessages)

			r.Group(func(r chi.Router) {
				r.Use(messageLimiter.Middleware)
				r.Post("/{id}/messages", chatHandler.SendMessage)
			})
		})

		// ──── Transcript Archive (requires identity) ────
		if archiveHandler != nil && jwtAuth != nil {
			r.Route("/archive", func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/sessions/{id}/messages", archiveHandler.ListMessages)
			})
		}

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
