package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz creation")
		config.Error(w, r, apperror.Validation("invalid request body"))
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, CreateQuizResponse{
		Message: "Quiz created successfully",
		QuizID:  quiz.ID,
	})
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"quizzes": quizzes,
	})
}

func (h *Handler) GetQuizWithQuestions(w http.ResponseWriter, r *http.Request) {
	quizWithQuestions, err := h.service.GetQuizWithQuestions(r.Context(), r.URL.Query().Get("quiz_id"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quizWithQuestions)
}
