package service

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		Environment:     "development",
		SessionSecret:   "test-secret",
		TokenIssuer:     "vero",
		SessionDuration: 7 * 24 * time.Hour,
	}
}

func newTestSessionService(t *testing.T, cfg config.App) *sessionService {
	t.Helper()

	svc, err := NewSessionService(cfg, logger.Nop())
	require.NoError(t, err)

	return svc.(*sessionService)
}

var sessionUser = models.User{ID: "u-1", Username: "alice", Role: models.RoleAdmin}

func TestNewSessionService_EmptySecret(t *testing.T) {
	cfg := testAppConfig()
	cfg.SessionSecret = ""

	_, err := NewSessionService(cfg, logger.Nop())

	require.ErrorIs(t, err, config.ErrMissingSessionSecret)
}

func TestIssueSession_CookieAttributes(t *testing.T) {
	svc := newTestSessionService(t, testAppConfig())

	token, cookie, err := svc.IssueSession(sessionUser)

	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, token, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestIssueSession_SecureInProduction(t *testing.T) {
	cfg := testAppConfig()
	cfg.Environment = config.EnvironmentProduction
	svc := newTestSessionService(t, cfg)

	_, cookie, err := svc.IssueSession(sessionUser)

	require.NoError(t, err)
	assert.True(t, cookie.Secure)
	assert.True(t, svc.ClearSession().Secure)
}

func TestIssueSession_EmptyUserID(t *testing.T) {
	svc := newTestSessionService(t, testAppConfig())

	_, _, err := svc.IssueSession(models.User{Username: "ghost"})

	require.ErrorIs(t, err, ErrSessionCreationFailed)
}

func TestReadSession_RoundTrip(t *testing.T) {
	svc := newTestSessionService(t, testAppConfig())
	issuedAt := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return issuedAt }

	token, _, err := svc.IssueSession(sessionUser)
	require.NoError(t, err)

	session, ok := svc.ReadSession(token)

	require.True(t, ok)
	assert.Equal(t, "u-1", session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.True(t, session.IssuedAt.Equal(issuedAt))
	assert.True(t, session.ExpiresAt.Equal(issuedAt.Add(7*24*time.Hour)))
}

func TestReadSession_Rejects(t *testing.T) {
	svc := newTestSessionService(t, testAppConfig())
	token, _, err := svc.IssueSession(sessionUser)
	require.NoError(t, err)

	otherKey := testAppConfig()
	otherKey.SessionSecret = "another-secret"
	foreign, _, err := newTestSessionService(t, otherKey).IssueSession(sessionUser)
	require.NoError(t, err)

	otherIssuer := testAppConfig()
	otherIssuer.TokenIssuer = "someone-else"
	wrongIssuer, _, err := newTestSessionService(t, otherIssuer).IssueSession(sessionUser)
	require.NoError(t, err)

	expiredSvc := newTestSessionService(t, testAppConfig())
	expiredSvc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	expired, _, err := expiredSvc.IssueSession(sessionUser)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "vero",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	first := "A"
	if strings.HasPrefix(parts[2], "A") {
		first = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + first + parts[2][1:]

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"tampered":       tampered,
		"foreign secret": foreign,
		"wrong issuer":   wrongIssuer,
		"expired":        expired,
		"alg none":       unsigned,
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				session, ok := svc.ReadSession(tok)
				assert.False(t, ok)
				assert.True(t, session.IsZero())
			})
		})
	}
}

func TestClearSession(t *testing.T) {
	svc := newTestSessionService(t, testAppConfig())

	cookie := svc.ClearSession()

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Contains(t, cookie.String(), "Max-Age=0")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, SessionCookieName, svc.CookieName())
}
