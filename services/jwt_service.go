package services

import (
	"errors"
	"fmt"
	"time"

	"sanskruti-travels-service/config"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService issues and validates session tokens.
type InterfaceJWTService interface {
	GenerateToken(adminID int, username string) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

// JWTService signs admin session tokens. Tokens expire after the configured
// session TTL (24 hours by default); expiry is carried in the token itself.
type JWTService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

// SessionClaims is the claim set of an admin session token.
type SessionClaims struct {
	AdminID  int    `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey: cfg.SessionSecret,
		issuer:    "sanskruti-travels-service",
		ttl:       time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

// GenerateToken generates a session token for the given admin
func (s *JWTService) GenerateToken(adminID int, username string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and validates a session token, returning its claims
func (s *JWTService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
