package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ProviderClaims is the subset of a provider token the dashboard cares about.
type ProviderClaims struct {
	ProviderID string
	Email      string
	ExpiresAt  time.Time // zero when the token carries no exp claim
}

// ParseProviderToken extracts the provider claims from a backend-issued token.
// The backend owns the signing key, so the signature is only checked when a
// secret is configured; expiry is always enforced.
func ParseProviderToken(tokenString, secret string) (*ProviderClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if secret != "" {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			var vErr *jwt.ValidationError
			if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}
			return nil, ErrInvalidToken
		}
		if !token.Valid {
			return nil, ErrInvalidToken
		}
	} else {
		if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
			return nil, ErrInvalidToken
		}
	}

	out := &ProviderClaims{}
	for _, key := range []string{"sub", "id", "_id", "providerId"} {
		if v, ok := claims[key].(string); ok && v != "" {
			out.ProviderID = v
			break
		}
	}
	if out.ProviderID == "" {
		return nil, errors.New("token does not identify a provider")
	}
	out.Email, _ = claims["email"].(string)

	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
		if time.Now().After(out.ExpiresAt) {
			return nil, ErrTokenExpired
		}
	}
	return out, nil
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
