package http

import (
	"net/http"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
)

// getServerVersion answers GET /api/version with the companion version as
// plain text. The client logs it when it starts.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromContext(r.Context()).Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write version")
	}
}
