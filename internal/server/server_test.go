package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/pageza/promptchef/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestNew(t *testing.T) {
	cfg := &config.Config{ServerHost: "localhost", ServerPort: "5000"}
	srv := New(cfg, http.NotFoundHandler())

	assert.NotNil(t, srv)
	assert.Equal(t, "localhost:5000", srv.Addr())
}

func TestStartAndShutdown(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: freePort(t)}
	srv := New(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	errChan := make(chan error, 1)
	go func() { errChan <- srv.Start() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-errChan)
}
