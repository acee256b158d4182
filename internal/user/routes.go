package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/middlewares"
)

func Routes(h *Handler, guard *auth.Guard) chi.Router {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("GET, OPTIONS"))
	r.Use(guard.RequireAdmin)

	r.Get("/", h.ListUsers)
	return r
}
