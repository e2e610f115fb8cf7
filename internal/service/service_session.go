package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = models.SessionCookieName

// sessionService signs sessions into HS256 tokens and reads them back.
// Nothing is stored server-side; a token is valid until it expires.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// sessionDuration controls token expiry and the cookie Max-Age.
	sessionDuration time.Duration

	secureCookies bool

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService builds a SessionService from the app configuration.
// An empty signing secret is a configuration error.
func NewSessionService(cfg config.App, logger *logger.Logger) (SessionService, error) {
	if cfg.SessionSecret == "" {
		return nil, config.ErrMissingSessionSecret
	}

	return &sessionService{
		tokenSignKey:    cfg.SessionSecret,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		secureCookies:   cfg.SecureCookies(),
		now:             time.Now,
		logger:          logger,
	}, nil
}

// IssueSession signs a token for user and returns it together with the
// cookie that carries it.
func (s *sessionService) IssueSession(user models.User) (string, *http.Cookie, error) {
	token, err := utils.GenerateSessionToken(s.tokenIssuer, user.Summary(), s.now(), s.sessionDuration, s.tokenSignKey)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, s.cookie(token, int(s.sessionDuration/time.Second)), nil
}

// ReadSession verifies token. Any failure (malformed, bad signature, wrong
// algorithm or issuer, expired) yields ok == false.
func (s *sessionService) ReadSession(token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}

	session, err := utils.ValidateAndParseSessionToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session verification failed")
		return models.Session{}, false
	}

	return session, true
}

// ClearSession returns a cookie that removes the session cookie from the
// browser.
func (s *sessionService) ClearSession() *http.Cookie {
	return s.cookie("", -1)
}

func (s *sessionService) CookieName() string {
	return SessionCookieName
}

func (s *sessionService) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
