package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and verifies HS256 tokens with a single shared
// secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv builds a JWTManager from the environment.
//
// - JWT_SECRET: HS256 signing secret (required)
// - JWT_ISSUER: iss claim value (optional, default "second-brain")
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "second-brain"
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    24 * time.Hour,
	}, nil
}

// Sign issues a token whose sub claim carries the user id.
func (m *JWTManager) Sign(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": m.issuer,
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies the token and returns the user id from the sub claim.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token missing sub claim")
	}

	return sub, nil
}
