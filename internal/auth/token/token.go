// Package token issues and verifies the signed bearer tokens handed to
// customers. Tokens carry only the user id; they cannot be revoked before
// expiry, which is why every request re-reads the user from storage.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	"github.com/novayra/storefront/internal/clock"
)

const TTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs and validates against the same clock, so expiry behaves
// consistently wherever the clock comes from.
type Issuer struct {
	secret []byte
	clock  clock.Clock
}

func NewIssuer(secret string, clk clock.Clock) *Issuer {
	return &Issuer{secret: []byte(secret), clock: clk}
}

type claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func (i *Issuer) Issue(userID snowflake.ID) (string, error) {
	now := i.clock.Now().UTC()
	c := claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

func (i *Issuer) Verify(raw string) (snowflake.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidToken
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	id, err := snowflake.ParseString(c.UserID)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}
