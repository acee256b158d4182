package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
)

func TestGuardAuthorize(t *testing.T) {
	guard := auth.NewGuard("Admins")

	assert.Equal(t, auth.Deny, guard.Authorize(nil))
	assert.Equal(t, auth.Deny, guard.Authorize([]string{"Users"}))
	assert.Equal(t, auth.Allow, guard.Authorize([]string{"Users", "Admins"}))
}

func TestGuardCheckMessages(t *testing.T) {
	guard := auth.NewGuard("")

	err := guard.Check(nil)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.Equal(t, "Access denied: No group found in token", apperror.Message(err))

	err = guard.Check([]string{"Users"})
	assert.Equal(t, "Access denied: Admins only", apperror.Message(err))

	assert.NoError(t, guard.Check([]string{"Admins"}))
}

func TestRequireAdmin(t *testing.T) {
	guard := auth.NewGuard("Admins")
	called := false
	handler := auth.ClaimsMiddleware(guard.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("Denied", func(t *testing.T) {
		called = false
		auth.Init("")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/results", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("AllowedWithBearerToken", func(t *testing.T) {
		called = false
		auth.Init(testSecret)
		defer auth.Init("")

		token, err := auth.GenerateJWT(auth.Claims{Email: "admin@example.com", Groups: []string{"Admins"}}, time.Minute)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/results", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		called = false
		auth.Init(testSecret)
		defer auth.Init("")

		req := httptest.NewRequest(http.MethodGet, "/admin/results", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})
}
