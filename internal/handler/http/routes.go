package http

import (
	"net/http"

	"github.com/MKhiriev/vero/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.With(h.throttleLogin).Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/health/db", h.dbHealth)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/api/auth/me", h.whoami)

		r.Get("/api/chats", h.listMessages)
		r.Post("/api/chats", h.sendMessage)
		r.Delete("/api/chats", h.purgeMessages)

		if h.services.MediaService != nil {
			r.Post("/api/media/upload-url", h.mediaUploadURL)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, service.ErrNotFound)
	})

	return router
}
