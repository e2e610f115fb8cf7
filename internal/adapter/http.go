package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
	"github.com/go-resty/resty/v2"
)

type httpChatAdapter struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewHTTPChatAdapter constructs the REST implementation of [ChatAdapter].
// cfg.ServerURL may omit the scheme, in which case http is assumed.
func NewHTTPChatAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ChatAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpChatAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpChatAdapter) SetSession(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = strings.TrimSpace(token)
}

func (h *httpChatAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *httpChatAdapter) Login(ctx context.Context, username, password string) (models.UserSummary, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	token := sessionFromResponse(resp)
	if token == "" {
		return models.UserSummary{}, ErrNoSessionCookie
	}
	h.SetSession(token)

	h.logger.Debug().Str("username", result.User.Username).Msg("logged in")

	return result.User, nil
}

func (h *httpChatAdapter) Logout(ctx context.Context) error {
	defer h.SetSession("")

	resp, err := h.sessionRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpChatAdapter) Whoami(ctx context.Context) (models.UserProfile, error) {
	var result models.WhoamiResponse

	resp, err := h.sessionRequest(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("whoami request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return result.User, nil
}

func (h *httpChatAdapter) ListMessages(ctx context.Context, limit int) ([]models.Message, error) {
	var result models.MessagesResponse

	req := h.sessionRequest(ctx).SetResult(&result)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/chats")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Messages, nil
}

func (h *httpChatAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var result models.MessageResponse

	resp, err := h.sessionRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/chats")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return result.Message, nil
}

func (h *httpChatAdapter) Purge(ctx context.Context) (int64, error) {
	var result models.PurgeResponse

	resp, err := h.sessionRequest(ctx).
		SetResult(&result).
		Delete("/api/chats")
	if err != nil {
		return 0, fmt.Errorf("purge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (h *httpChatAdapter) RequestUploadURL(ctx context.Context, kind models.MessageKind) (models.MediaUpload, error) {
	var result models.MediaUpload

	resp, err := h.sessionRequest(ctx).
		SetBody(models.MediaUploadRequest{Kind: kind}).
		SetResult(&result).
		Post("/api/media/upload-url")
	if err != nil {
		return models.MediaUpload{}, fmt.Errorf("upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaUpload{}, err
	}

	return result, nil
}

func (h *httpChatAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// sessionRequest starts a request that carries the stored session cookie,
// if any.
func (h *httpChatAdapter) sessionRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Session(); token != "" {
		req.SetHeader("Cookie", models.SessionCookieName+"="+token)
	}
	return req
}

// sessionFromResponse returns the session token set by resp, or "".
func sessionFromResponse(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == models.SessionCookieName && c.MaxAge >= 0 {
			return c.Value
		}
	}
	return ""
}
