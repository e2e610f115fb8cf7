package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vero/internal/app"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/internal/validators"
	"github.com/MKhiriev/vero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// Login / logout / whoami
// ─────────────────────────────────────────────

func TestLogin_SetsSessionCookie(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"pw"}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, alice.Summary(), body.User)

	cookie := findCookie(rr, service.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	session, ok := services.SessionService.ReadSession(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, alice.ID, session.UserID)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails int
	}{
		{
			name:        "invalid credentials",
			body:        `{"username":"alice","password":"nope"}`,
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidCredentials,
		},
		{
			name: "validation failed",
			body: `{"username":"","password":""}`,
			err: validators.NewValidationError(
				models.FieldError{Field: "username", Message: "username is required"},
				models.FieldError{Field: "password", Message: "password is required"},
			),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgValidationFailed,
			wantDetails: 2,
		},
		{
			name:        "broken json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "store down",
			body:        `{"username":"alice","password":"pw"}`,
			err:         errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices(t)
			services.AuthService.(*fakeAuthService).verifyFn = func(context.Context, models.LoginRequest) (models.User, error) {
				return models.User{}, tt.err
			}
			router := newTestRouter(t, services, testAppConfig())

			rr := do(t, router, http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Len(t, body.Details, tt.wantDetails)
			assert.NotContains(t, rr.Body.String(), "connection refused")
			assert.Nil(t, findCookie(rr, service.SessionCookieName))
		})
	}
}

func TestLogin_Throttled(t *testing.T) {
	cfg := testAppConfig()
	cfg.LoginRateLimit = 2
	cfg.LoginRateWindow = time.Minute
	router := newTestRouter(t, newTestServices(t), cfg)

	body := `{"username":"alice","password":"pw"}`
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/auth/login", body).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/auth/login", body).Code)

	rr := do(t, router, http.MethodPost, "/api/auth/login", body)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.Equal(t, app.MsgTooManyRequests, decodeError(t, rr).Error)

	// other routes are not throttled
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/auth/logout", "").Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.LogoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, app.MsgLoggedOut, body.Message)

	assert.Contains(t, rr.Header().Get("Set-Cookie"), service.SessionCookieName+"=;")
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestWhoami(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	t.Run("no cookie", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/api/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgNotAuthenticated, decodeError(t, rr).Error)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/api/auth/me", "", &http.Cookie{Name: service.SessionCookieName, Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/api/auth/me", "", sessionCookie(t, services, alice))
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.WhoamiResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, alice.Username, body.User.Username)
		assert.Equal(t, alice.CreatedAt, body.User.CreatedAt)
	})
}

func TestRequireSession_CookieAmongOthers(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())
	cookie := sessionCookie(t, services, bob)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Add("Cookie", "theme=dark; lang")
	req.Header.Add("Cookie", service.SessionCookieName+"="+cookie.Value+"; other=1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ─────────────────────────────────────────────
// Chats
// ─────────────────────────────────────────────

func TestListMessages(t *testing.T) {
	services := newTestServices(t)
	var gotLimit int
	var gotSession models.Session
	services.ChatService.(*fakeChatService).getFn = func(ctx context.Context, s models.Session, limit int) ([]models.Message, error) {
		gotLimit, gotSession = limit, s
		fromCtx, ok := utils.SessionFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, s, fromCtx)
		return []models.Message{{ID: "m-1", Text: "hi"}}, nil
	}
	router := newTestRouter(t, services, testAppConfig())
	cookie := sessionCookie(t, services, bob)

	rr := do(t, router, http.MethodGet, "/api/chats?limit=25", "", cookie)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 25, gotLimit)
	assert.Equal(t, bob.ID, gotSession.UserID)
	var body models.MessagesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Messages, 1)

	rr = do(t, router, http.MethodGet, "/api/chats", "", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, gotLimit)
}

func TestListMessages_EmptyIsArray(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/chats", "", sessionCookie(t, services, bob))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"messages":[]}`, rr.Body.String())
}

func TestListMessages_BadLimit(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/chats?limit=ten", "", sessionCookie(t, services, bob))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidLimit, decodeError(t, rr).Error)
}

func TestChats_RequireSession(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		rr := do(t, router, method, "/api/chats", `{"text":"hi"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, method)
	}
}

func TestSendMessage(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/chats", `{"text":"hello","type":"text"}`, sessionCookie(t, services, bob))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "hello", body.Message.Text)
	assert.Equal(t, "bob", body.Message.SenderAlias)
}

func TestSendMessage_ValidationDetails(t *testing.T) {
	services := newTestServices(t)
	services.ChatService.(*fakeChatService).sendFn = func(context.Context, models.Session, models.SendMessageRequest) (models.Message, error) {
		return models.Message{}, validators.NewValidationError(models.FieldError{Field: "text", Message: "text must not be empty"})
	}
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/chats", `{"text":"  "}`, sessionCookie(t, services, bob))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":[{"field":"text","message":"text must not be empty"}]}`, rr.Body.String())
}

func TestPurgeMessages(t *testing.T) {
	services := newTestServices(t)
	services.ChatService.(*fakeChatService).purgeFn = func(_ context.Context, s models.Session) (int64, error) {
		if s.Role != models.RoleAdmin {
			return 0, service.ErrForbidden
		}
		return 4, nil
	}
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodDelete, "/api/chats", "", sessionCookie(t, services, alice))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"deletedCount":4}`, rr.Body.String())

	rr = do(t, router, http.MethodDelete, "/api/chats", "", sessionCookie(t, services, bob))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgForbidden, decodeError(t, rr).Error)
}

// ─────────────────────────────────────────────
// Media
// ─────────────────────────────────────────────

func TestMediaUploadURL_NotRegisteredWhenDisabled(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/media/upload-url", `{"type":"image"}`, sessionCookie(t, services, bob))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMediaUploadURL(t *testing.T) {
	services := newTestServices(t)
	expires := time.Date(2026, 3, 14, 15, 24, 0, 0, time.UTC)
	services.MediaService = &fakeMediaService{
		presignFn: func(_ context.Context, _ models.Session, req models.MediaUploadRequest) (models.MediaUpload, error) {
			return models.MediaUpload{MediaRef: "media/" + string(req.Kind) + "/k", UploadURL: "http://s3/k", ExpiresAt: expires}, nil
		},
	}
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodPost, "/api/media/upload-url", `{"type":"voice"}`, sessionCookie(t, services, bob))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"mediaId":"media/voice/k","uploadUrl":"http://s3/k","expiresAt":"2026-03-14T15:24:00Z"}`, rr.Body.String())

	rr = do(t, router, http.MethodPost, "/api/media/upload-url", `{"type":"voice"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// Health / version / method handling
// ─────────────────────────────────────────────

func TestDBHealth(t *testing.T) {
	services := newTestServices(t)
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/health/db", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true,"db":"vero"}`, rr.Body.String())

	services.HealthService = &fakeHealthService{err: errors.New("down")}
	rr = do(t, newTestRouter(t, services, testAppConfig()), http.MethodGet, "/api/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"ok":false}`, rr.Body.String())
}

func TestVersion(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/version/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestWrongMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	tests := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/chats"},
		{http.MethodDelete, "/api/version/"},
		{http.MethodPost, "/api/health/db"},
	}

	for _, tt := range tests {
		rr := do(t, router, tt.method, tt.path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, app.MsgNotFound, decodeError(t, rr).Error)
	}
}

func TestTraceIDAndGzip(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/health/db", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"db":"vero"}`, string(plain))
}

func TestRecoversFromPanic(t *testing.T) {
	services := newTestServices(t)
	services.HealthService = nil
	router := newTestRouter(t, services, testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/health/db", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUnknownPathIsJSONNotFound(t *testing.T) {
	router := newTestRouter(t, newTestServices(t), testAppConfig())

	rr := do(t, router, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNotFound, decodeError(t, rr).Error)
}
