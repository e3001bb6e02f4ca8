// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenManager struct {
	secret       []byte
	issuer       string
	expiryPeriod time.Duration
	now          func() time.Time
}

func NewTokenManager(secret, issuer string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		expiryPeriod: expiryPeriod,
		now:          time.Now,
	}
}

// Claims identify an account. The kind is a hint for clients only; the
// account resolver decides the kind from the stores.
type Claims struct {
	AccountID string `json:"account_id"`
	Kind      string `json:"kind,omitempty"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(accountID uuid.UUID, kind string) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.expiryPeriod)
	claims := Claims{
		AccountID: accountID.String(),
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    tm.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate verifies the signature and expiry and returns the account id the
// token was issued for.
func (tm *TokenManager) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithIssuer(tm.issuer), jwt.WithTimeFunc(tm.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed account id", ErrInvalidToken)
	}
	return id, nil
}
