package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoClaims = errors.New("no claims in context")

// Claims is the caller identity as asserted by the identity provider.
type Claims struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Groups  []string `json:"groups"`
}

func (c Claims) HasGroup(group string) bool {
	for _, g := range c.Groups {
		if g == group {
			return true
		}
	}
	return false
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	if !ok {
		return Claims{}, ErrNoClaims
	}
	return claims, nil
}

// FromAuthorizer extracts claims from a REST API Cognito authorizer context.
func FromAuthorizer(authorizer map[string]interface{}) Claims {
	raw, _ := authorizer["claims"].(map[string]interface{})
	if raw == nil {
		return Claims{}
	}

	return Claims{
		Subject: stringClaim(raw["sub"]),
		Email:   stringClaim(raw["email"]),
		Name:    stringClaim(raw["name"]),
		Groups:  ParseGroups(raw["cognito:groups"]),
	}
}

// ParseGroups accepts the shapes Cognito group claims arrive in: a JSON array,
// a bracketed space-separated list ("[Admins Users]"), or a comma-separated string.
func ParseGroups(v interface{}) []string {
	switch groups := v.(type) {
	case nil:
		return nil
	case []string:
		return compact(groups)
	case []interface{}:
		out := make([]string, 0, len(groups))
		for _, g := range groups {
			out = append(out, stringClaim(g))
		}
		return compact(out)
	case string:
		s := strings.TrimSpace(groups)
		if strings.HasPrefix(s, "[\"") {
			var list []string
			if err := json.Unmarshal([]byte(s), &list); err == nil {
				return compact(list)
			}
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		return compact(strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		}))
	default:
		return nil
	}
}

func compact(groups []string) []string {
	out := groups[:0:0]
	for _, g := range groups {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringClaim(v interface{}) string {
	s, _ := v.(string)
	return s
}
