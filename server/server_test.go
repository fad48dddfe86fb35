package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"nextid-server/config"
	"nextid-server/handlers"
	"nextid-server/internal/common/idgen"
	"nextid-server/router"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(port int) *config.Config {
	return &config.Config{
		BindAddress:     "127.0.0.1",
		Port:            port,
		Engine:          config.EngineMux,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type response struct {
	code int
	body string
}

func do(t *testing.T, client *http.Client, method, url string) response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{code: resp.StatusCode, body: string(body)}
}

func TestServerEndToEnd(t *testing.T) {
	for _, engine := range []string{config.EngineMux, config.EngineEcho} {
		t.Run(engine, func(t *testing.T) {
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)

			cfg := testConfig(0)
			cfg.Engine = engine
			handler, err := router.New(cfg.Engine, handlers.NewAPIHandler(idgen.NewCounter(9)), quietLog())
			require.NoError(t, err)

			srv := New(cfg, handler, quietLog())
			srv.Serve(ln)

			transport := &http.Transport{DisableKeepAlives: true}
			client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
			base := "http://" + ln.Addr().String()

			assert.Equal(t, response{http.StatusOK, `{"error":false,"id":10}`}, do(t, client, http.MethodGet, base+"/nextid"))
			assert.Equal(t, response{http.StatusNotFound, "Unsupported path"}, do(t, client, http.MethodGet, base+"/other"))
			assert.Equal(t, response{http.StatusNotFound, "Unsupported path"}, do(t, client, http.MethodPost, base+"/nextid"))
			assert.Equal(t, response{http.StatusOK, `{"error":false,"id":11}`}, do(t, client, http.MethodGet, base+"/nextid"))

			transport.CloseIdleConnections()
			require.NoError(t, srv.Shutdown(context.Background()))
		})
	}
}

func TestServerConcurrentCallers(t *testing.T) {
	const callers = 200

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	counter := idgen.NewCounter(0)
	handler, err := router.New(config.EngineMux, handlers.NewAPIHandler(counter), quietLog())
	require.NoError(t, err)
	srv := New(testConfig(0), handler, quietLog())
	srv.Serve(ln)

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	url := "http://" + ln.Addr().String() + "/nextid"

	bodies := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(url)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			b, _ := io.ReadAll(resp.Body)
			bodies[i] = string(b)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, callers)
	for _, b := range bodies {
		require.NotEmpty(t, b)
		_, dup := seen[b]
		require.False(t, dup, "duplicate response %s", b)
		seen[b] = struct{}{}
	}
	assert.Equal(t, uint64(callers), counter.Peek())

	transport.CloseIdleConnections()
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestStartFailsOnBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := New(testConfig(busy.Addr().(*net.TCPAddr).Port), http.NotFoundHandler(), quietLog())
	err = srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestInitSentryDisabledWithoutDSN(t *testing.T) {
	enabled, err := InitSentry(&config.Config{})
	require.NoError(t, err)
	assert.False(t, enabled)
}
