package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
)

// withSignature rejects requests whose body is not signed with the pairing
// key. The body is restored for the next handler.
func (h *Handler) withSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Error().Str("func", "*Handler.withSignature").Msg(ErrEmptySignatureHeader.Error())
			writeError(w, ErrEmptySignatureHeader)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withSignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withSignature").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			writeError(w, ErrSignatureMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}
