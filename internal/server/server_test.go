// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-sif-keeper/internal/handler/http"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
)

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	appInfo, err := service.NewAppInfoService("1.0.0")
	require.NoError(t, err)
	h := myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, "k", logger.Nop())

	s := newHTTPServer(h.Init(), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	done := make(chan error, 1)
	go func() { done <- s.RunServer() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	s.Shutdown()
	assert.NoError(t, <-done, "graceful shutdown is not an error")
}
