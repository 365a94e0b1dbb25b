// FILE: lixenwraith/tlog/metrics/collector_test.go
package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tlog"
)

type fixedStats tlog.Stats

func (f fixedStats) Stats() tlog.Stats { return tlog.Stats(f) }

func TestCollectorValues(t *testing.T) {
	src := fixedStats{
		Enqueued:    10,
		Written:     8,
		WriteErrors: 2,
		Drains:      3,
		LastBacklog: 4,
		CurrentWait: 1500 * time.Millisecond,
		State:       tlog.WorkerIdle,
	}

	reg := prometheus.NewPedanticRegistry()
	_, err := Register(reg, src, "", prometheus.Labels{"logger": "main"})
	require.NoError(t, err)

	expected := `
# HELP tlog_enqueued_total Lines accepted into the queue.
# TYPE tlog_enqueued_total counter
tlog_enqueued_total{logger="main"} 10
# HELP tlog_write_errors_total Lines the sink rejected.
# TYPE tlog_write_errors_total counter
tlog_write_errors_total{logger="main"} 2
# HELP tlog_current_wait_seconds Wait chosen by the timeout policy after the latest pass.
# TYPE tlog_current_wait_seconds gauge
tlog_current_wait_seconds{logger="main"} 1.5
# HELP tlog_worker_state 1 for the current worker state.
# TYPE tlog_worker_state gauge
tlog_worker_state{logger="main",state="draining"} 0
tlog_worker_state{logger="main",state="exiting"} 0
tlog_worker_state{logger="main",state="idle"} 1
tlog_worker_state{logger="main",state="stopped"} 0
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"tlog_enqueued_total", "tlog_write_errors_total", "tlog_current_wait_seconds", "tlog_worker_state")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 17, count, "13 single series plus 4 worker states")
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := Register(reg, fixedStats{}, "app", nil)
	require.NoError(t, err)
	_, err = Register(reg, fixedStats{}, "app", nil)
	assert.Error(t, err)
}

func TestCollectorLiveLogger(t *testing.T) {
	logger, err := tlog.NewBuilder().
		File(t.TempDir() + "/metrics.log").
		PolicyString("constant:20").
		Build()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	_, err = Register(reg, logger, "svc", nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		logger.Info("counted")
	}
	require.NoError(t, logger.Quit())

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		m := mf.GetMetric()
		if len(m) == 1 && m[0].GetCounter() != nil {
			values[mf.GetName()] = m[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 5.0, values["svc_enqueued_total"])
	assert.Equal(t, 5.0, values["svc_written_total"])
}

func TestFastHTTPHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := Register(reg, fixedStats{Written: 42}, "", nil)
	require.NoError(t, err)

	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI("/metrics")
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	FastHTTPHandler(reg)(&ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "tlog_written_total 42")
}
