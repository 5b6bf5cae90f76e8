package services

import (
	"testing"
	"time"

	"sanskruti-travels-service/config"
	"sanskruti-travels-service/storage"

	"github.com/stretchr/testify/assert"
)

func newTestAuthService(t *testing.T) (*AuthService, *AdminService) {
	t.Helper()

	cfg := &config.Config{
		SessionSecret:        "test-secret",
		SessionTTLHours:      24,
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "sanskruti123",
	}
	store := storage.NewMemStorage()

	adminService := NewAdminService(store, cfg)
	authService := NewAuthService(store, NewJWTService(cfg), NewMemoryBlacklist())
	return authService, adminService
}

func TestAuthService_LoginLogoutLifecycle(t *testing.T) {
	auth, admins := newTestAuthService(t)
	admins.EnsureDefaultAdmin()

	token, err := auth.Login("admin", "sanskruti123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, ok := auth.Check(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", claims.Username)

	auth.Logout(token)

	_, ok = auth.Check(token)
	assert.False(t, ok)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	auth, admins := newTestAuthService(t)
	admins.EnsureDefaultAdmin()

	// Unknown username and wrong password fail with the same error
	_, err := auth.Login("nobody", "sanskruti123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("admin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Check_RejectsGarbage(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, ok := auth.Check("")
	assert.False(t, ok)

	_, ok = auth.Check("not-a-token")
	assert.False(t, ok)
}

func TestAuthService_Check_RejectsExpiredToken(t *testing.T) {
	store := storage.NewMemStorage()

	// Issue through a service whose TTL has already elapsed
	expiredIssuer := &JWTService{
		secretKey: "test-secret",
		issuer:    "sanskruti-travels-service",
		ttl:       -time.Minute,
	}
	auth := NewAuthService(store, expiredIssuer, NewMemoryBlacklist())

	token, err := expiredIssuer.GenerateToken(1, "admin")
	assert.NoError(t, err)

	_, ok := auth.Check(token)
	assert.False(t, ok)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	auth, admins := newTestAuthService(t)
	admins.EnsureDefaultAdmin()

	// No session, garbage token, double logout: all no-ops
	auth.Logout("")
	auth.Logout("not-a-token")

	token, err := auth.Login("admin", "sanskruti123")
	assert.NoError(t, err)

	auth.Logout(token)
	auth.Logout(token)

	_, ok := auth.Check(token)
	assert.False(t, ok)
}

func TestAuthService_LogoutDoesNotAffectOtherSessions(t *testing.T) {
	auth, admins := newTestAuthService(t)
	admins.EnsureDefaultAdmin()

	first, err := auth.Login("admin", "sanskruti123")
	assert.NoError(t, err)

	// Token payloads include issued-at seconds, so a later login yields a
	// distinct token
	time.Sleep(1100 * time.Millisecond)

	second, err := auth.Login("admin", "sanskruti123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	auth.Logout(first)

	_, ok := auth.Check(first)
	assert.False(t, ok)
	_, ok = auth.Check(second)
	assert.True(t, ok)
}

func TestAdminService_EnsureDefaultAdmin_RunsOnce(t *testing.T) {
	_, admins := newTestAuthService(t)

	admins.EnsureDefaultAdmin()
	admins.EnsureDefaultAdmin()

	assert.Len(t, admins.GetAllAdmins(), 1)
}

func TestAdminService_CreateAdmin_RejectsDuplicateUsername(t *testing.T) {
	_, admins := newTestAuthService(t)

	_, err := admins.CreateAdmin("ops", "first-password")
	assert.NoError(t, err)

	_, err = admins.CreateAdmin("ops", "second-password")
	assert.Error(t, err)
	assert.Len(t, admins.GetAllAdmins(), 1)
}

func TestAdminService_GetAdminByID(t *testing.T) {
	_, admins := newTestAuthService(t)

	created, err := admins.CreateAdmin("ops", "ops-password")
	assert.NoError(t, err)

	got, found := admins.GetAdminByID(created.ID)
	assert.True(t, found)
	assert.Equal(t, "ops", got.Username)

	_, found = admins.GetAdminByID(9999)
	assert.False(t, found)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuing := NewJWTService(&config.Config{SessionSecret: "issuer-secret", SessionTTLHours: 24})
	validating := NewJWTService(&config.Config{SessionSecret: "other-secret", SessionTTLHours: 24})

	token, err := issuing.GenerateToken(1, "admin")
	assert.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.Error(t, err)
}

func TestMemoryBlacklist_ExpiredEntriesForgotten(t *testing.T) {
	blacklist := NewMemoryBlacklist()

	blacklist.Revoke("expired-token", time.Now().Add(-time.Minute))
	blacklist.Revoke("live-token", time.Now().Add(time.Hour))

	assert.False(t, blacklist.IsRevoked("expired-token"))
	assert.True(t, blacklist.IsRevoked("live-token"))
	assert.False(t, blacklist.IsRevoked("never-seen"))
}
