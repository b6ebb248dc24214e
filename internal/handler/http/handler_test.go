// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/mock"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
	"github.com/MKhiriev/go-sif-keeper/models"
)

const testHashKey = "pairing-key"

var testItemID = models.ItemID{DeviceID: "companion-1", VaultID: "personal", ItemID: "bank"}

type handlerMocks struct {
	companion *mock.MockCompanionService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (http.Handler, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		companion: mock.NewMockCompanionService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		CompanionService: m.companion,
		AppInfoService:   m.appInfo,
	}, testHashKey, logger.Nop())
	return h.Init(), m
}

func signedFetchRequest(t *testing.T, body []byte, key string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/companion/fetch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(utils.HashHeader, utils.NewHasher(key).Sign(body))
	}
	return req
}

func itemBody(t *testing.T, id models.ItemID) []byte {
	t.Helper()
	body, err := json.Marshal(id)
	require.NoError(t, err)
	return body
}

// ─────────────────────────────────────────────
// GET /api/version
// ─────────────────────────────────────────────

func TestHandler_Version(t *testing.T) {
	router, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.2")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.4.2", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// POST /api/companion/fetch
// ─────────────────────────────────────────────

func TestHandler_Fetch_Success(t *testing.T) {
	router, m := newTestHandler(t)

	reset := uint32(7)
	m.companion.EXPECT().Fetch(gomock.Any(), testItemID).
		Return(models.FetchGrant{ItemKey: []byte("0123456789abcdef0123456789abcdef"), ResetMinutes: &reset}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, signedFetchRequest(t, itemBody(t, testItemID), testHashKey))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var grant models.FetchGrant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &grant))
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), grant.ItemKey)
	require.NotNil(t, grant.ResetMinutes)
	assert.Equal(t, uint32(7), *grant.ResetMinutes)
}

func TestHandler_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte
		key        string
		serviceErr error
		callsSvc   bool
		wantStatus int
	}{
		{name: "unsigned", key: "", wantStatus: http.StatusUnauthorized},
		{name: "signed with another key", key: "other-key", wantStatus: http.StatusUnauthorized},
		{name: "malformed body", body: []byte("{not json"), key: testHashKey, wantStatus: http.StatusBadRequest},
		{name: "denied", key: testHashKey, callsSvc: true, serviceErr: service.ErrCompanionDenied, wantStatus: http.StatusForbidden},
		{name: "empty identity", key: testHashKey, callsSvc: true, serviceErr: service.ErrInvalidItem, wantStatus: http.StatusBadRequest},
		{name: "approval abandoned", key: testHashKey, callsSvc: true, serviceErr: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "internal", key: testHashKey, callsSvc: true, serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			if tt.callsSvc {
				m.companion.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchGrant{}, tt.serviceErr)
			}

			body := tt.body
			if body == nil {
				body = itemBody(t, testItemID)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, signedFetchRequest(t, body, tt.key))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandler_WrongMethodIsNotFound(t *testing.T) {
	router, _ := newTestHandler(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/companion/fetch", nil),
		httptest.NewRequest(http.MethodDelete, "/api/version", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestHandler_Fetch_GzipResponse(t *testing.T) {
	router, m := newTestHandler(t)
	m.companion.EXPECT().Fetch(gomock.Any(), testItemID).Return(models.FetchGrant{ItemKey: []byte("key")}, nil)

	req := signedFetchRequest(t, itemBody(t, testItemID), testHashKey)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var grant models.FetchGrant
	require.NoError(t, json.Unmarshal(raw, &grant))
	assert.Equal(t, []byte("key"), grant.ItemKey)
}
