package http

import (
	"net/http"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/internal/utils"
)

// requireSession is the session gate. It reads the session cookie from every
// Cookie header of the request, verifies it via
// [service.SessionService.ReadSession] and, on success, stores the session in
// the request context under [utils.SessionCtxKey].
//
// A missing, malformed, forged or expired cookie is rejected with 401 before
// the wrapped handler runs.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		sessions := h.services.SessionService

		token, ok := utils.CookieValue(r, sessions.CookieName())
		if !ok || token == "" {
			log.Debug().Msg("no session cookie")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		session, ok := sessions.ReadSession(token)
		if !ok {
			log.Info().Msg("invalid or expired session")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := utils.WithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
