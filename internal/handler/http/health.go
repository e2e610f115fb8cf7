package http

import (
	"net/http"

	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/models"
)

// dbHealth reports 200 with the database name after a successful ping and
// 503 otherwise.
func (h *Handler) dbHealth(w http.ResponseWriter, r *http.Request) {
	name, err := h.services.HealthService.CheckDB(r.Context())
	if err != nil {
		utils.WriteJSON(w, models.HealthResponse{OK: false}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{OK: true, DB: name}, http.StatusOK)
}
