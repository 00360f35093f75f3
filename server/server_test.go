package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/tts-gateway/config"
	"github.com/adrianliechti/tts-gateway/server"

	"github.com/stretchr/testify/require"
)

func TestHealthRoute(t *testing.T) {
	s, err := server.New(&config.Config{})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	s, err := server.New(&config.Config{})
	require.NoError(t, err)

	req := httptest.NewRequest("OPTIONS", "/tts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
