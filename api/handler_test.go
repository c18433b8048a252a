package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoavu1110/CS3502-Project-2/config"
	"github.com/Khoavu1110/CS3502-Project-2/internal/generator"
	"github.com/Khoavu1110/CS3502-Project-2/internal/requests"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.SchedulerConfig{
		Generator:  generator.DefaultOptions(),
		Scheduling: schedulers.DefaultOptions(),
	}
	Register(app.Group("/api/v1"), NewSchedulerHandlerImpl(cfg))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

const twoJobs = `{"jobs":[
	{"process_id":1,"arrival_time":0,"burst_time":5,"priority":1},
	{"process_id":2,"arrival_time":1,"burst_time":3,"priority":2}]}`

func TestFirstComeFirstServe(t *testing.T) {
	status, raw := do(t, newTestApp(), http.MethodPost, "/api/v1/fcfs", twoJobs)
	require.Equal(t, http.StatusOK, status, string(raw))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(raw, &response))
	assert.Equal(t, "fcfs", response.Algorithm)
	require.Len(t, response.Details, 2)
	assert.Equal(t, 5, response.Details[1].StartTime)
	assert.Equal(t, 8, response.Details[1].CompletionTime)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
	assert.InDelta(t, 100.0, response.CpuUtilization, 1e-9)
}

func TestEachAlgorithmRoute(t *testing.T) {
	app := newTestApp()
	// srtf preempts pid 1 at t=1
	for route, turnaround := range map[string]float64{"hrrn": 6, "sjf": 6, "srtf": 5.5} {
		status, raw := do(t, app, http.MethodPost, "/api/v1/"+route, twoJobs)
		require.Equal(t, http.StatusOK, status, route)

		var response responses.ScheduleResponse
		require.NoError(t, json.Unmarshal(raw, &response))
		assert.Equal(t, route, response.Algorithm)
		assert.InDelta(t, turnaround, response.AverageTurnAroundTime, 1e-9, route)
	}
}

func TestRoundRobinQuantum(t *testing.T) {
	app := newTestApp()

	status, raw := do(t, app, http.MethodPost, "/api/v1/rr?quantum=2", twoJobs)
	require.Equal(t, http.StatusOK, status, string(raw))
	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(raw, &response))
	assert.Equal(t, "rr", response.Algorithm)
	// pid 1 runs 0-2, pid 2 runs 2-4, pid 1 runs 4-6, pid 2 runs 6-7, pid 1 runs 7-8
	require.Len(t, response.Details, 2)
	assert.Equal(t, 2, response.Details[0].ProcessId)
	assert.Equal(t, 7, response.Details[0].CompletionTime)
	assert.Equal(t, 8, response.Details[1].CompletionTime)

	status, _ = do(t, app, http.MethodPost, "/api/v1/rr?quantum=0", twoJobs)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMultilevelFeedbackQueue(t *testing.T) {
	status, raw := do(t, newTestApp(), http.MethodPost, "/api/v1/mlfq", twoJobs)
	require.Equal(t, http.StatusOK, status, string(raw))
	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(raw, &response))
	assert.Equal(t, "mlfq", response.Algorithm)
	assert.Equal(t, 8, response.TotalTime)
}

func TestAllAlgorithms(t *testing.T) {
	status, raw := do(t, newTestApp(), http.MethodPost, "/api/v1/all", twoJobs)
	require.Equal(t, http.StatusOK, status)

	var all responses.AllResponse
	require.NoError(t, json.Unmarshal(raw, &all))
	require.Len(t, all.Results, 4)
	assert.Equal(t, "fcfs", all.Results[0].Algorithm)
	assert.Equal(t, "srtf", all.Results[3].Algorithm)
}

func TestBadRequests(t *testing.T) {
	app := newTestApp()
	for name, body := range map[string]string{
		"malformed":  `{"jobs":`,
		"empty":      `{"jobs":[]}`,
		"zero burst": `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`,
		"negative":   `{"jobs":[{"process_id":1,"arrival_time":-2,"burst_time":1}]}`,
		"overflow": `{"jobs":[
			{"process_id":1,"arrival_time":9223372036854775804,"burst_time":5},
			{"process_id":2,"arrival_time":9223372036854775803,"burst_time":2}]}`,
	} {
		status, raw := do(t, app, http.MethodPost, "/api/v1/sjf", body)
		assert.Equal(t, http.StatusBadRequest, status, name)
		assert.Contains(t, string(raw), `"error"`, name)
	}
}

func TestGenerate(t *testing.T) {
	app := newTestApp()
	status, raw := do(t, app, http.MethodGet, "/api/v1/generate?count=7&seed=5", "")
	require.Equal(t, http.StatusOK, status)

	var generated requests.ScheduleRequests
	require.NoError(t, json.Unmarshal(raw, &generated))
	assert.Len(t, generated.Jobs, 7)
	assert.NoError(t, generated.Validate())

	_, again := do(t, app, http.MethodGet, "/api/v1/generate?count=7&seed=5", "")
	assert.JSONEq(t, string(raw), string(again))

	status, _ = do(t, app, http.MethodGet, "/api/v1/generate?count=0", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGenerateCountIsCapped(t *testing.T) {
	app := newTestApp()
	for _, target := range []string{
		"/api/v1/generate?count=1000000000",
		"/api/v1/simulate?count=1000000000",
		"/api/v1/simulate?count=1001",
	} {
		status, raw := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.Contains(t, string(raw), "at most 1000", target)
	}

	status, _ := do(t, app, http.MethodGet, "/api/v1/generate?count=1000&seed=2", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestSimulate(t *testing.T) {
	status, raw := do(t, newTestApp(), http.MethodGet, "/api/v1/simulate?count=4&seed=1", "")
	require.Equal(t, http.StatusOK, status)

	var body struct {
		Jobs    []requests.Job               `json:"jobs"`
		Results []responses.ScheduleResponse `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Jobs, 4)
	require.Len(t, body.Results, 4)
	for _, r := range body.Results {
		assert.Len(t, r.Details, 4)
		assert.Greater(t, r.CpuUtilization, 0.0)
		assert.LessOrEqual(t, r.CpuUtilization, 100.0)
	}
}
