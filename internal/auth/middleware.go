package auth

import (
	"net/http"
	"strings"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

// ClaimsMiddleware resolves the caller identity and stores it in the request
// context. Behind API Gateway the authorizer claims are used; otherwise a
// locally signed bearer token is accepted and an invalid one is rejected.
// Requests without either carry empty claims.
func ClaimsMiddleware(next http.Handler) http.Handler {
	return resolveClaims(next, true)
}

// OptionalClaimsMiddleware is ClaimsMiddleware for public routes: an invalid
// bearer token is ignored and the request proceeds with empty claims.
func OptionalClaimsMiddleware(next http.Handler) http.Handler {
	return resolveClaims(next, false)
}

func resolveClaims(next http.Handler, rejectInvalid bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := Claims{}

		if gw, ok := core.GetAPIGatewayContextFromContext(r.Context()); ok {
			claims = FromAuthorizer(gw.Authorizer)
		} else if token := bearerToken(r); token != "" && Enabled() {
			parsed, err := ValidateJWT(token)
			switch {
			case err == nil:
				claims = *parsed
			case rejectInvalid:
				config.WithContext(r.Context()).WithError(err).Warn("Invalid bearer token")
				config.Error(w, r, apperror.Forbidden("Access denied: invalid token"))
				return
			default:
				config.WithContext(r.Context()).WithError(err).Debug("Ignoring invalid bearer token on public route")
			}
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}
	return ""
}
