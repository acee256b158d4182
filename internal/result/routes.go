package result

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/middlewares"
)

func SubmitRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("POST, OPTIONS"))

	r.Post("/", h.SubmitQuiz)
	return r
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("GET, OPTIONS"))

	r.Get("/me", h.MyResults)
	return r
}

func AdminRoutes(h *Handler, guard *auth.Guard) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("GET, OPTIONS"))
	r.Use(guard.RequireAdmin)

	r.Get("/", h.ListResults)
	return r
}
