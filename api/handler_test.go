package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShettyBro/scheduling-simulator/config"
	"github.com/ShettyBro/scheduling-simulator/internal/metrics"
	"github.com/ShettyBro/scheduling-simulator/internal/requests"
)

func newTestApp(t *testing.T) (*fiber.App, *metrics.Metrics) {
	t.Helper()

	m, err := metrics.NewMetrics(prom.NewRegistry())
	require.NoError(t, err)

	cfg := &config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2, StarvationFactor: 3}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg, logger, m))
	return app, m
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func exampleBody() requests.ScheduleRequest {
	return requests.ScheduleRequest{
		Processes: []requests.ProcessRequest{
			{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 1},
			{ID: 2, ArrivalTime: 2, BurstTime: 3, Priority: 2},
			{ID: 3, ArrivalTime: 4, BurstTime: 8, Priority: 3},
			{ID: 4, ArrivalTime: 6, BurstTime: 2, Priority: 4},
		},
		Quantum: 2,
	}
}

func TestFCFSEndpoint(t *testing.T) {
	app, m := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/fcfs", exampleBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var response requests.ScheduleResponse
	require.NoError(t, json.Unmarshal(raw, &response))
	assert.Equal(t, requests.IntervalResponse{ProcessID: 1, Start: 0, End: 5}, response.Timeline[0])
	assert.Len(t, response.Results, 4)
	assert.InDelta(t, 4.25, response.Stats.AverageWaitingTime, 1e-9)
	assert.NotContains(t, string(raw), `"starvationRisk"`)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulationsTotal().WithLabelValues("fcfs")))
}

func TestPriorityEndpointReportsStarvationRisk(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/priority", requests.ScheduleRequest{
		Processes: []requests.ProcessRequest{
			{ID: 1, ArrivalTime: 0, BurstTime: 10, Priority: 1},
			{ID: 2, ArrivalTime: 0, BurstTime: 1, Priority: 5},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response requests.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.NotNil(t, response.StarvationRisk)
	assert.True(t, *response.StarvationRisk)
}

func TestRoundRobinDefaultQuantum(t *testing.T) {
	app, _ := newTestApp(t)

	body := exampleBody()
	body.Quantum = 0 // falls back to the configured default of 2
	resp := postJSON(t, app, "/api/v1/rr", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response requests.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	for _, interval := range response.Timeline {
		assert.LessOrEqual(t, interval.End-interval.Start, int64(2))
	}
}

func TestAllEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/all", exampleBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response map[string]requests.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Len(t, response, 4)
	for _, key := range []string{"fcfs", "sjf", "priority", "rr"} {
		assert.Contains(t, response, key)
	}
	assert.NotNil(t, response["priority"].StarvationRisk)
}

func TestValidationFailures(t *testing.T) {
	app, _ := newTestApp(t)

	body := exampleBody()
	body.Processes[0].BurstTime = 0
	resp := postJSON(t, app, "/api/v1/sjf", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResponse map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResponse))
	assert.Contains(t, errResponse["error"], "burstTime must be positive")
}

func TestMalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fcfs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
