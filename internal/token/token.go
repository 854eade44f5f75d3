// Package token issues and verifies the stateless session tokens used by
// the HTTP auth middleware. Validity is purely a function of the signing
// secret and the clock; nothing is stored server-side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 7 * 24 * time.Hour

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret []byte) *Manager {
	return &Manager{
		secret: secret,
		ttl:    defaultTTL,
		now:    time.Now,
	}
}

// Issue signs a token for the given subject with a 7-day expiry fixed at
// issuance time.
func (m *Manager) Issue(subject string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates raw, returning the subject it was issued for.
// Any failure (bad signature, wrong algorithm, malformed payload, expiry)
// collapses to domain.ErrTokenInvalid so callers can't distinguish them.
func (m *Manager) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tok.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}
