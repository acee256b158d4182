package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
	"github.com/saulo-duarte/quizbank-lambda/internal/result"
	"github.com/saulo-duarte/quizbank-lambda/internal/user"
)

type RouterConfig struct {
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
	ResultHandler   *result.Handler
	UserHandler     *user.Handler
	Guard           *auth.Guard
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewares.Recover)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.ClaimsMiddleware)

		r.Route("/admin", func(r chi.Router) {
			r.Mount("/questions", question.Routes(cfg.QuestionHandler, cfg.Guard))
			r.Mount("/quizzes", quiz.AdminRoutes(cfg.QuizHandler, cfg.Guard))
			r.Mount("/results", result.AdminRoutes(cfg.ResultHandler, cfg.Guard))
			r.Mount("/users", user.Routes(cfg.UserHandler, cfg.Guard))
		})

		r.Mount("/quizzes/submit", result.SubmitRoutes(cfg.ResultHandler))
		r.Mount("/results", result.Routes(cfg.ResultHandler))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalClaimsMiddleware)

		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	})
	return r
}
