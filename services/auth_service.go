package services

import (
	"errors"
	"time"

	"sanskruti-travels-service/storage"
	"sanskruti-travels-service/utils"
)

// ErrInvalidCredentials is returned for every login failure. Unknown
// usernames and wrong passwords are deliberately indistinguishable so the
// response cannot be used for username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InterfaceAuthService gates admin-only operations behind a login.
type InterfaceAuthService interface {
	Login(username, password string) (string, error)
	Logout(token string)
	Check(token string) (*SessionClaims, bool)
}

// AuthService implements the admin session lifecycle: login issues a
// session token, logout revokes it, Check is the predicate every protected
// operation consults before touching the store.
type AuthService struct {
	Store     *storage.MemStorage
	JWT       InterfaceJWTService
	Blacklist InterfaceTokenBlacklist
}

// NewAuthService creates a new auth service
func NewAuthService(store *storage.MemStorage, jwtService InterfaceJWTService, blacklist InterfaceTokenBlacklist) *AuthService {
	return &AuthService{
		Store:     store,
		JWT:       jwtService,
		Blacklist: blacklist,
	}
}

// Login verifies the credentials against the stored admin record and
// returns a fresh session token. The username match is exact and
// case-sensitive.
func (s *AuthService) Login(username, password string) (string, error) {
	admin, ok := s.Store.GetAdminByUsername(username)
	if !ok {
		return "", ErrInvalidCredentials
	}
	if !utils.VerifyPassword(password, admin.Password) {
		return "", ErrInvalidCredentials
	}
	return s.JWT.GenerateToken(admin.ID, admin.Username)
}

// Logout revokes the given session token until its natural expiry.
// Idempotent: invalid, expired, and already-revoked tokens are all no-ops.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}

	claims, err := s.JWT.ValidateToken(token)
	if err != nil {
		// An unparseable or expired token is already unusable.
		return
	}

	until := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	s.Blacklist.Revoke(token, until)
}

// Check reports whether the token identifies a live admin session. It is a
// pure predicate over the token and the revocation list.
func (s *AuthService) Check(token string) (*SessionClaims, bool) {
	if token == "" {
		return nil, false
	}

	claims, err := s.JWT.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	if s.Blacklist.IsRevoked(token) {
		return nil, false
	}
	return claims, true
}
