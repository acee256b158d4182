package config

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Log.WithError(err).Error("failed to encode response body")
	}
}

// Error translates err into its status code and writes {"error": message}.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.StatusCode(err)
	log := WithContext(r.Context()).WithFields(map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	} else {
		log.WithError(err).Warn("request rejected")
	}

	JSON(w, status, map[string]string{"error": apperror.Message(err)})
}
