package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. All of them map to a 401 at the API
// boundary; they stay distinct here so logs can tell a clock problem
// from a forged token.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")
)

type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256-signed identity tokens.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl}
}

// Generate signs a token embedding the user id, expiring after the
// configured TTL.
func (j *JWT) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the embedded user id.
func (j *JWT) Validate(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})

	switch {
	case err == nil && token.Valid:
		claims, ok := token.Claims.(*Claims)
		if !ok || claims.UserID <= 0 {
			return 0, ErrTokenMalformed
		}
		return claims.UserID, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, ErrTokenSignature
	default:
		return 0, ErrTokenMalformed
	}
}

// TTL reports the configured token lifetime; the auth cookie expiry is
// kept in lockstep with it.
func (j *JWT) TTL() time.Duration {
	return j.ttl
}
