package http

import (
	"net/http"

	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

func (h *Handler) mediaUploadURL(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.SessionFromContext(r.Context())

	var req models.MediaUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.services.MediaService.PresignUpload(r.Context(), session, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}
