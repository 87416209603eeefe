// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Access tokens authenticate API requests; reset tokens are
// single-purpose credentials mailed out during password recovery.
const (
	PurposeAccess        = "access"
	PurposePasswordReset = "password_reset"
)

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(userID, email string) (string, error) {
	return tm.generate(userID, email, PurposeAccess, tm.expiryPeriod)
}

// GeneratePasswordReset issues a short-lived token that is only accepted by
// the password-reset flow.
func (tm *TokenManager) GeneratePasswordReset(userID, email string, ttl time.Duration) (string, error) {
	return tm.generate(userID, email, PurposePasswordReset, ttl)
}

func (tm *TokenManager) generate(userID, email, purpose string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// ValidateForPurpose validates a token and additionally requires that it was
// issued for the given purpose. Tokens issued before purposes existed carry an
// empty purpose and are treated as access tokens.
func (tm *TokenManager) ValidateForPurpose(tokenString, purpose string) (*Claims, error) {
	claims, err := tm.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	got := claims.Purpose
	if got == "" {
		got = PurposeAccess
	}
	if got != purpose {
		return nil, fmt.Errorf("token purpose mismatch: got %q", got)
	}

	return claims, nil
}
