package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/models"
	"github.com/stretchr/testify/require"
)

// ---- Fake: AuthService ----

type fakeAuthService struct {
	verifyFn func(ctx context.Context, req models.LoginRequest) (models.User, error)
	whoamiFn func(ctx context.Context, session models.Session) (models.User, error)
}

func (f *fakeAuthService) VerifyCredentials(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.verifyFn(ctx, req)
}

func (f *fakeAuthService) Whoami(ctx context.Context, session models.Session) (models.User, error) {
	return f.whoamiFn(ctx, session)
}

func (f *fakeAuthService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (f *fakeAuthService) SeedUser(_ context.Context, username, _ string, role models.Role) (models.User, error) {
	return models.User{Username: username, Role: role}, nil
}

// ---- Fake: ChatService ----

type fakeChatService struct {
	getFn   func(ctx context.Context, session models.Session, limit int) ([]models.Message, error)
	sendFn  func(ctx context.Context, session models.Session, req models.SendMessageRequest) (models.Message, error)
	purgeFn func(ctx context.Context, session models.Session) (int64, error)
}

func (f *fakeChatService) GetMessages(ctx context.Context, session models.Session, limit int) ([]models.Message, error) {
	return f.getFn(ctx, session, limit)
}

func (f *fakeChatService) SendMessage(ctx context.Context, session models.Session, req models.SendMessageRequest) (models.Message, error) {
	return f.sendFn(ctx, session, req)
}

func (f *fakeChatService) Purge(ctx context.Context, session models.Session) (int64, error) {
	return f.purgeFn(ctx, session)
}

// ---- Fake: MediaService ----

type fakeMediaService struct {
	presignFn func(ctx context.Context, session models.Session, req models.MediaUploadRequest) (models.MediaUpload, error)
}

func (f *fakeMediaService) PresignUpload(ctx context.Context, session models.Session, req models.MediaUploadRequest) (models.MediaUpload, error) {
	return f.presignFn(ctx, session, req)
}

// ---- Fake: HealthService ----

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) CheckDB(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "vero", nil
}

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ---- Helpers ----

var (
	alice = models.User{ID: "u-alice", Username: "alice", Role: models.RoleAdmin, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	bob   = models.User{ID: "u-bob", Username: "bob", Role: models.RolePartner}
)

func testAppConfig() config.App {
	return config.App{
		SessionSecret:   "handler-secret",
		TokenIssuer:     "vero",
		SessionDuration: time.Hour,
	}
}

// newTestServices returns services backed by fakes and a real session
// service so cookies issued in tests are verifiable.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	sessions, err := service.NewSessionService(testAppConfig(), logger.Nop())
	require.NoError(t, err)

	return &service.Services{
		AuthService: &fakeAuthService{
			verifyFn: func(context.Context, models.LoginRequest) (models.User, error) { return alice, nil },
			whoamiFn: func(context.Context, models.Session) (models.User, error) { return alice, nil },
		},
		SessionService: sessions,
		ChatService: &fakeChatService{
			getFn: func(context.Context, models.Session, int) ([]models.Message, error) {
				return []models.Message{}, nil
			},
			sendFn: func(_ context.Context, s models.Session, req models.SendMessageRequest) (models.Message, error) {
				return models.Message{ID: "m-1", SenderID: s.UserID, SenderAlias: s.Username, Text: req.Text, Kind: models.KindText}, nil
			},
			purgeFn: func(context.Context, models.Session) (int64, error) { return 0, nil },
		},
		HealthService:  &fakeHealthService{},
		AppInfoService: &fakeAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, services *service.Services, cfg config.App) http.Handler {
	t.Helper()
	return NewHandler(services, cfg, logger.Nop()).Init()
}

// sessionCookie issues a valid session cookie for user.
func sessionCookie(t *testing.T, services *service.Services, user models.User) *http.Cookie {
	t.Helper()

	_, cookie, err := services.SessionService.IssueSession(user)
	require.NoError(t, err)

	return cookie
}
