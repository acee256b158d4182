package result

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

const (
	anonymousEmail = "unknown@example.com"
	anonymousName  = "Anonymous User"
)

type Handler struct {
	service ResultService
}

func NewHandler(s ResultService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz submission")
		config.Error(w, r, apperror.Validation("Missing quiz_id or answers"))
		return
	}

	claims, _ := auth.GetUserClaimsFromContext(r.Context())
	who := Submitter{Email: claims.Email, Name: claims.Name}
	if who.Email == "" {
		who.Email = anonymousEmail
	}
	if who.Name == "" {
		who.Name = anonymousName
	}

	resp, err := h.service.Submit(r.Context(), who, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListAll(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

func (h *Handler) MyResults(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.GetUserClaimsFromContext(r.Context())

	resp, err := h.service.ListMine(r.Context(), Submitter{Email: claims.Email, Name: claims.Name})
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
