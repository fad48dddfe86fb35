package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDsIssuedCounter(t *testing.T) {
	before := testutil.ToFloat64(IDsIssued)
	IDsIssued.Inc()
	IDsIssued.Inc()
	assert.Equal(t, before+2, testutil.ToFloat64(IDsIssued))
}

func TestListenerServesMetrics(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	l := NewListener(ln.Addr().String(), logrus.NewEntry(logrus.New()))
	done := make(chan struct{})
	go func() {
		l.Serve(ln)
		close(done)
	}()

	HttpRequests.WithLabelValues("GET", "200").Inc()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "nextid_ids_issued_total")
	assert.Contains(t, string(body), `nextid_http_requests_total{code="200",method="GET"}`)

	require.NoError(t, l.Stop(context.Background()))
	<-done
}
