package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

func run(t *testing.T, algorithm schedulers.Algorithm) responses.ScheduleResponse {
	t.Helper()
	resp, err := schedulers.Run(algorithm, []core.Process{
		core.NewProcess(1, 0, 3, 2),
		core.NewProcess(2, 1, 1, 4),
		core.NewProcess(3, 9, 2, 1),
	})
	require.NoError(t, err)
	return resp
}

func TestPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	PrintSchedule(&buf, run(t, schedulers.FirstComeFirstServe))

	out := buf.String()
	assert.Contains(t, out, "First Come First Serve")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "Throughput: 0.273")
	assert.Contains(t, out, "54.55%")
}

func TestTimelineInsertsIdle(t *testing.T) {
	slices := timeline(run(t, schedulers.FirstComeFirstServe))
	assert.Equal(t, []slice{
		{pid: 1, start: 0, end: 3},
		{pid: 2, start: 3, end: 4},
		{pid: 0, start: 4, end: 9},
		{pid: 3, start: 9, end: 11},
	}, slices)
}

func TestPrintGantt(t *testing.T) {
	var buf bytes.Buffer
	PrintGantt(&buf, run(t, schedulers.ShortestRemainingTimeFirst))

	out := buf.String()
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P3")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "11")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	PrintComparison(&buf, []responses.ScheduleResponse{
		run(t, schedulers.FirstComeFirstServe),
		run(t, schedulers.ShortestJobFirst),
	})

	out := buf.String()
	assert.Contains(t, out, "First Come First Serve")
	assert.Contains(t, out, "Shortest Job First")
	assert.Contains(t, out, "AVG WAIT")
}
