package http

import (
	"io"
	"net/http"
)

// getServerVersion answers with the bare build version as plain text so that
// shell scripts can compare it without a JSON parser.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
