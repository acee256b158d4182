package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/middlewares"
)

// Routes are readable without any group membership.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("GET, OPTIONS"))

	r.Get("/", h.ListQuizzes)
	r.Get("/questions", h.GetQuizWithQuestions)
	return r
}

func AdminRoutes(h *Handler, guard *auth.Guard) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("POST, OPTIONS"))
	r.Use(guard.RequireAdmin)

	r.Post("/", h.CreateQuiz)
	return r
}
