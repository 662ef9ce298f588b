// Package auth implements the token codec: issuing and verifying the
// signed, time-bounded credentials that carry a subject id and its
// privilege flag. Signing and verification share one HMAC secret; both
// sides live in the same process, so an asymmetric scheme buys nothing here.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a bandroom access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID  uint64 `json:"uid"`
	IsAdmin bool   `json:"is_admin"`
}

// Manager signs and verifies access tokens. The secret, token lifetime and
// admin set are injected at construction and never change afterwards.
type Manager struct {
	secret []byte
	ttl    time.Duration
	admins *AdminSet
}

func NewManager(secret []byte, ttl time.Duration, admins *AdminSet) *Manager {
	return &Manager{secret: secret, ttl: ttl, admins: admins}
}

// Issue creates a signed token for subject. The is_admin claim is fixed at
// issue time from admin-set membership.
func (m *Manager) Issue(subject uint64) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:  subject,
		IsAdmin: m.admins.Contains(subject),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates tokenString. It fails with
// common.ErrTokenExpired past the expiry instant and common.ErrInvalidToken
// for a bad signature or malformed token. The is_admin claim is not checked
// here; privilege enforcement belongs to the authorizer.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
