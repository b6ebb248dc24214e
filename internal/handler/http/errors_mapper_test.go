package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sif-keeper/internal/app"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid item", service.ErrInvalidItem, http.StatusBadRequest, app.MsgNoItemIDProvided},
		{"wrapped denial", fmt.Errorf("fetch: %w", service.ErrCompanionDenied), http.StatusForbidden, app.MsgAccessDenied},
		{"empty signature", ErrEmptySignatureHeader, http.StatusUnauthorized, app.MsgEmptySignature},
		{"bad signature", ErrSignatureMismatch, http.StatusUnauthorized, app.MsgSignatureMismatch},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgApprovalTimedOut},
		{"canceled", context.Canceled, http.StatusGatewayTimeout, app.MsgApprovalTimedOut},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			status := writeError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody+"\n", rr.Body.String())
		})
	}
}
