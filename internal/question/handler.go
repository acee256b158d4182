package question

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// Questions serves the question bank endpoint, dispatching on method.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.AddQuestion(w, r)
	case http.MethodGet:
		h.ListQuestions(w, r)
	case http.MethodPut:
		h.UpdateQuestion(w, r)
	case http.MethodDelete:
		h.DeleteQuestion(w, r)
	default:
		config.Error(w, r, apperror.Validation("Method not supported"))
	}
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var dto AddQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, r, apperror.Validation("invalid request body"))
		return
	}

	if err := h.service.AddQuestion(r.Context(), dto); err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Question added successfully",
	})
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Error(w, r, apperror.Validation("invalid request body"))
		return
	}

	id, patch, err := ParseUpdate(body)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	if err := h.service.UpdateQuestion(r.Context(), id, patch); err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Question updated",
	})
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	var dto DeleteQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, r, apperror.Validation("invalid request body"))
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), dto.ID); err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Question deleted",
	})
}
