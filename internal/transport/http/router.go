package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/notifications-api/internal/application/inbox"
	"github.com/notifications-api/internal/config"
	"github.com/notifications-api/internal/transport/http/handler"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	inboxSvc := inbox.NewService(deps.InboxStore, deps.Mailer, cfg.NotifyEmail)

	healthH := handler.NewHealthHandler()
	inboxH := handler.NewInboxHandler(inboxSvc)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Post("/create", inboxH.Create)
	r.Get("/list", inboxH.List)
	r.Post("/read", inboxH.MarkAsRead)

	return r
}
