// Package handler exposes the service over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/johndosdos/chirp/internal"
	"github.com/johndosdos/chirp/internal/model"
	ratelimiter "github.com/johndosdos/chirp/internal/rate_limiter"
)

// SocialService is the set of operations the routes call into.
type SocialService interface {
	RegisterAccount(ctx context.Context, acct model.Account) (model.Account, error)
	Login(ctx context.Context, acct model.Account) (model.Account, bool, error)
	CreateMessage(ctx context.Context, msg model.Message) (model.Message, error)
	GetMessage(ctx context.Context, id int32) (model.Message, bool, error)
	GetAllMessages(ctx context.Context) ([]model.Message, error)
	GetMessagesByAccount(ctx context.Context, accountID int32) ([]model.Message, error)
	UpdateMessage(ctx context.Context, msg model.Message) (model.Message, error)
	DeleteMessage(ctx context.Context, id int32) (model.Message, bool, error)
	Ping(ctx context.Context) error
}

// NewRouter wires every route. limiter may be nil.
func NewRouter(svc SocialService, limiter *ratelimiter.IPRateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(internal.RequestID)
	r.Use(internal.Logger)
	r.Use(middleware.Recoverer)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Get("/healthz", ServeHealth(svc))

	r.Post("/register", ServeRegister(svc))
	r.Post("/login", ServeLogin(svc))

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", ServeCreateMessage(svc))
		r.Get("/", ServeListMessages(svc))
		r.Get("/{id}", ServeGetMessage(svc))
		r.Patch("/{id}", ServeUpdateMessage(svc))
		r.Delete("/{id}", ServeDeleteMessage(svc))
	})

	r.Get("/accounts/{id}/messages", ServeListAccountMessages(svc))

	return r
}
