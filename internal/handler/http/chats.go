package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

// listMessages serves GET /api/chats?limit=N. A missing limit means the
// default page size; out-of-range values are clamped by the store.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.SessionFromContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	messages, err := h.services.ChatService.GetMessages(r.Context(), session, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Success: true, Messages: messages}, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.SessionFromContext(r.Context())

	var req models.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.ChatService.SendMessage(r.Context(), session, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: message}, http.StatusCreated)
}

func (h *Handler) purgeMessages(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.SessionFromContext(r.Context())

	deleted, err := h.services.ChatService.Purge(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PurgeResponse{Success: true, DeletedCount: deleted}, http.StatusOK)
}
