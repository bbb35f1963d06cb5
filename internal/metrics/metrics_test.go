package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/dtek-notifier/internal/metrics"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncCycles(metrics.ResultSuccess)
	m.IncCycles(metrics.ResultSuccess)
	m.IncCycles(metrics.ResultError)
	m.IncDeliveries(metrics.ActionEdited)
	m.IncDeliveries(metrics.ActionNotModified)
	m.SetPowerStatus(false, 240)

	count, err := testutil.GatherAndCount(reg, "dtek_notifier_cycles_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `dtek_notifier_cycles_total{result="success"} 2`)
	assert.Contains(t, string(body), `dtek_notifier_cycles_total{result="error"} 1`)
	assert.Contains(t, string(body), `dtek_notifier_deliveries_total{action="edited"} 1`)
	assert.Contains(t, string(body), `dtek_notifier_deliveries_total{action="not_modified"} 1`)
	assert.Contains(t, string(body), "dtek_notifier_power_on 0")
	assert.Contains(t, string(body), "dtek_notifier_minutes_to_next_event 240")
}

func TestNoop(t *testing.T) {
	var m metrics.Noop
	assert.NotPanics(t, func() {
		m.IncCycles(metrics.ResultError)
		m.IncDeliveries(metrics.ActionFailed)
		m.SetPowerStatus(true, -1)
	})
}
