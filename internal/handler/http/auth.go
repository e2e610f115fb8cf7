package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/vero/internal/app"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.VerifyCredentials(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, cookie, err := h.services.SessionService.IssueSession(user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	http.SetCookie(w, cookie)
	utils.WriteJSON(w, models.LoginResponse{Success: true, User: user.Summary()}, http.StatusOK)
}

// logout always succeeds; it only instructs the browser to drop the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.services.SessionService.ClearSession())
	utils.WriteJSON(w, models.LogoutResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) whoami(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.SessionFromContext(r.Context())

	user, err := h.services.AuthService.Whoami(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WhoamiResponse{Success: true, User: user.Profile()}, http.StatusOK)
}

// decodeJSON decodes the request body into dst. Any decoding failure is
// reported as ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
