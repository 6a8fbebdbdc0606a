package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTokenTTL is the lifetime of a regular login token.
	DefaultTokenTTL = 7 * 24 * time.Hour
	// ExtendedTokenTTL is used when the client asks to be remembered.
	ExtendedTokenTTL = 30 * 24 * time.Hour
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// SetSigningSecret installs the process-wide signing secret. Called once at
// startup after the environment is loaded.
func SetSigningSecret(secret string) {
	jwtKey = []byte(secret)
}

type Claims struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

func CreateToken(accountID uuid.UUID, email, accountType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID:   accountID.String(),
		Email:       email,
		AccountType: accountType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken returns ErrForbidden when the signature does not match and
// ErrUnauthorized for everything else (malformed, expired, wrong method).
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrForbidden
		}
		return nil, ErrUnauthorized
	}
	if !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// DecodeExpiry reads the expiry claim without checking the signature. The
// client uses it to test token freshness locally; it must never be used to
// grant access.
func DecodeExpiry(tokenString string) (time.Time, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrUnauthorized
	}
	return claims.ExpiresAt.Time, nil
}
