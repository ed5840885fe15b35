package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("expired token")
	ErrInvalidClaims    = errors.New("invalid claims")
	ErrMissingSecretKey = errors.New("session secret not configured")
)

// StaffClaims identifies who is operating the counter. This is display
// metadata carried onto bills, not access control.
type StaffClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies staff identity tokens
type TokenService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewTokenService creates a TokenService from the SESSION_SECRET environment
// variable
func NewTokenService() (*TokenService, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, ErrMissingSecretKey
	}

	return &TokenService{
		secretKey:  []byte(secret),
		expiration: 24 * time.Hour,
	}, nil
}

// GenerateToken signs a token carrying the staff display name
func (s *TokenService) GenerateToken(name string) (string, error) {
	now := time.Now()
	claims := StaffClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kirana-konnect",
			Subject:   name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken verifies a token and returns its claims
func (s *TokenService) ValidateToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
