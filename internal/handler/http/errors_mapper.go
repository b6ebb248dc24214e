package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sif-keeper/internal/app"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	resp   errorResponse
}{
	{service.ErrInvalidItem, errorResponse{http.StatusBadRequest, app.MsgNoItemIDProvided}},
	{service.ErrCompanionDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},

	{ErrEmptySignatureHeader, errorResponse{http.StatusUnauthorized, app.MsgEmptySignature}},
	{ErrSignatureMismatch, errorResponse{http.StatusUnauthorized, app.MsgSignatureMismatch}},

	{context.DeadlineExceeded, errorResponse{http.StatusGatewayTimeout, app.MsgApprovalTimedOut}},
	{context.Canceled, errorResponse{http.StatusGatewayTimeout, app.MsgApprovalTimedOut}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeError(w http.ResponseWriter, err error) int {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
	return resp.status
}
