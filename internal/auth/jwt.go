package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

var ErrJWTDisabled = errors.New("bearer tokens are disabled: JWT_SECRET not set")

type tokenClaims struct {
	Email  string   `json:"email,omitempty"`
	Name   string   `json:"name,omitempty"`
	Groups []string `json:"cognito:groups,omitempty"`
	jwt.RegisteredClaims
}

// Init sets the HMAC secret for locally issued bearer tokens. An empty secret
// disables bearer authentication, which is the normal Lambda setup.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

func Enabled() bool {
	return len(jwtSecret) > 0
}

func GenerateJWT(claims Claims, duration time.Duration) (string, error) {
	if !Enabled() {
		return "", ErrJWTDisabled
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email:  claims.Email,
		Name:   claims.Name,
		Groups: claims.Groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	})
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	if !Enabled() {
		return nil, ErrJWTDisabled
	}

	parsed := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	return &Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Name:    parsed.Name,
		Groups:  compact(parsed.Groups),
	}, nil
}
