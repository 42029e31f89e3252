package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/handler"
	myHTTP "github.com/divinoviana/planoespecialindividualizado/internal/handler/http"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":0"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":0"}},
		{name: "no address", handlers: &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	// Arrange
	addr := freeAddress(t)
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(stopped)
	}()

	// Act: the server answers while running
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	// Assert
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	_, err = http.Get("http://" + addr + "/api/unknown")
	assert.Error(t, err)
}
