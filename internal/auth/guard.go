package auth

import (
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

// Guard decides whether a caller may perform administrative operations.
type Guard struct {
	adminGroup string
}

func NewGuard(adminGroup string) *Guard {
	if adminGroup == "" {
		adminGroup = "Admins"
	}
	return &Guard{adminGroup: adminGroup}
}

func (g *Guard) Authorize(groups []string) Decision {
	for _, group := range groups {
		if group == g.adminGroup {
			return Allow
		}
	}
	return Deny
}

// Check returns a Forbidden error describing why groups were denied.
func (g *Guard) Check(groups []string) error {
	if len(groups) == 0 {
		return apperror.Forbidden("Access denied: No group found in token")
	}
	if g.Authorize(groups) == Deny {
		return apperror.Forbidden("Access denied: Admins only")
	}
	return nil
}

// RequireAdmin rejects the request before the handler runs unless the caller
// belongs to the administrator group.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := GetUserClaimsFromContext(r.Context())
		if err := g.Check(claims.Groups); err != nil {
			config.Error(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
