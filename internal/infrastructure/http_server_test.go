package infrastructure

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/net/http2"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"proto":"`+r.Proto+`"}`)
	})
}

func startServer(t *testing.T, handler http.Handler) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	config := &Config{Port: DefaultPort, ShutdownTimeout: time.Second}
	server := NewHTTPServer(config, handler, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()
	return "http://" + ln.Addr().String(), cancel, done
}

func TestHTTPServer_AddressFromPortEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	server := NewHTTPServer(mustLoadConfig(t), okHandler(), zaptest.NewLogger(t))
	assert.Equal(t, ":9090", server.Addr())
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	baseURL, cancel, done := startServer(t, okHandler())

	resp, err := http.Get(baseURL + "/anything")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"proto":"HTTP/1.1"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for server shutdown")
	}
}

func TestHTTPServer_ServesCleartextHTTP2(t *testing.T) {
	baseURL, cancel, done := startServer(t, okHandler())
	defer func() {
		cancel()
		<-done
	}()

	client := &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
		Timeout: 2 * time.Second,
	}
	resp, err := client.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"proto":"HTTP/2.0"}`, string(body))
}

func TestHTTPServer_RunFailsWhenPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	t.Setenv("PORT", strconv.Itoa(port))
	server := NewHTTPServer(mustLoadConfig(t), okHandler(), zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, server.Run(ctx))
}
