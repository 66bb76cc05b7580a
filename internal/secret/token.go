package secret

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenAudience is the audience of all edit capability tokens.
const TokenAudience = "goal-edit"

// DefaultTokenTTL is the lifetime of edit capability tokens.
const DefaultTokenTTL = time.Hour

var ErrTokenInvalid = errors.New("token is invalid or expired")

// Issuer signs and verifies edit capability tokens.
//
// A token grants the same rights as the edit secret for one goal, for a
// limited time, without the secret having to travel in every request.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewIssuer returns an Issuer that signs with the given key.
func NewIssuer(key []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Issuer{
		key: key,
		ttl: ttl,
		now: time.Now,
	}
}

// Issue returns a signed token for the goal and its expiry time.
func (i *Issuer) Issue(goalID uuid.UUID) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(i.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   goalID.String(),
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}

	return signed, expires, nil
}

// Verify checks that the token is valid and was issued for the goal.
func (i *Issuer) Verify(tokenString string, goalID uuid.UUID) error {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(TokenAudience),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return ErrTokenInvalid
	}

	if claims.Subject != goalID.String() {
		return ErrTokenInvalid
	}

	return nil
}
