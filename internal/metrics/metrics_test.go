package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCall("ledger", "icrc7_mint", OutcomeReplied, 10*time.Millisecond)
	c.RecordCall("ledger", "icrc7_mint", OutcomeReplied, 20*time.Millisecond)
	c.RecordCall("ledger", "icrc7_mint", OutcomeRejected, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.calls.WithLabelValues("ledger", "icrc7_mint", OutcomeReplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("ledger", "icrc7_mint", OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.latency))
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRateLimited()
	c.RecordArchived(5)
	c.RecordArchived(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.rateLimited))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.archived))
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCall("factory", "show_collections", OutcomeReplied, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "icrc7_replica_calls_total")
}

func TestNop(t *testing.T) {
	r := Nop()
	r.RecordCall("ledger", "x", OutcomeReplied, time.Second)
	r.RecordRateLimited()
	r.RecordArchived(1)
}
