package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/middlewares"
)

func Routes(h *Handler, guard *auth.Guard) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors("GET, POST, PUT, DELETE, OPTIONS"))
	r.Use(guard.RequireAdmin)

	r.HandleFunc("/", h.Questions)
	return r
}
