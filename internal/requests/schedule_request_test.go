package requests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		jobs []Job
		err  error
	}{
		{"empty", nil, ErrEmptyJobs},
		{"zero burst", []Job{{ProcessId: 1, BurstTime: 0}}, ErrInvalidBurstTime},
		{"negative arrival", []Job{{ProcessId: 1, ArrivalTime: -1, BurstTime: 2}}, ErrInvalidArrivalTime},
		{"duplicate id", []Job{{ProcessId: 1, BurstTime: 2}, {ProcessId: 1, BurstTime: 3}}, ErrDuplicateProcessId},
		{"arrival near max int", []Job{{ProcessId: 1, ArrivalTime: math.MaxInt - 3, BurstTime: 5}, {ProcessId: 2, ArrivalTime: math.MaxInt - 4, BurstTime: 2}}, ErrTimeLimitExceeded},
		{"total burst past limit", []Job{{ProcessId: 1, ArrivalTime: core.MaxTime - 1, BurstTime: 1}, {ProcessId: 2, BurstTime: 1}}, ErrTimeLimitExceeded},
		{"at limit", []Job{{ProcessId: 1, ArrivalTime: core.MaxTime - 2, BurstTime: 1}, {ProcessId: 2, BurstTime: 1}}, nil},
		{"ok", []Job{{ProcessId: 1, BurstTime: 2}, {ProcessId: 2, ArrivalTime: 4, BurstTime: 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := ScheduleRequests{Jobs: tt.jobs}
			err := request.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProcessesRoundTrip(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: 3, ArrivalTime: 1, BurstTime: 4, Priority: 2},
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 7, Priority: 5},
	}}

	processes := request.Processes()
	require.Len(t, processes, 2)
	assert.Equal(t, core.NewProcess(3, 1, 4, 2), processes[0])
	assert.False(t, processes[1].IsCompleted)

	assert.Equal(t, request, FromProcesses(processes))
}
