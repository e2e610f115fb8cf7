package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vero/internal/app"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/service"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/internal/validators"
	"github.com/MKhiriev/vero/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidInput:       {http.StatusBadRequest, app.MsgValidationFailed},
	ErrInvalidJSON:                {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrInvalidLimit:               {http.StatusBadRequest, app.MsgInvalidLimit},
	service.ErrUnauthenticated:    {http.StatusUnauthorized, app.MsgNotAuthenticated},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrForbidden:          {http.StatusForbidden, app.MsgForbidden},
	service.ErrNotFound:           {http.StatusNotFound, app.MsgNotFound},
	ErrTooManyRequests:            {http.StatusTooManyRequests, app.MsgTooManyRequests},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError maps err to a status and writes the JSON error body. Internal
// errors are logged with the request's trace id and never echoed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{Error: message}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		body.Details = verr.Fields
	}

	utils.WriteJSON(w, body, status)
}
