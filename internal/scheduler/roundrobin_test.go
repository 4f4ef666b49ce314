package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinExampleWorkloadQuantum2(t *testing.T) {
	schedule, err := RoundRobin(exampleProcesses(), 2)
	require.NoError(t, err)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 4},
		{PID: 1, Start: 4, Stop: 6},
		{PID: 3, Start: 6, Stop: 8},
		{PID: 2, Start: 8, Stop: 9},
		{PID: 4, Start: 9, Stop: 11},
		{PID: 1, Start: 11, Stop: 12},
		{PID: 3, Start: 12, Stop: 14},
		{PID: 3, Start: 14, Stop: 16},
		{PID: 3, Start: 16, Stop: 18},
	}, schedule.Gantt)
	assert.Equal(t, []int64{7, 4, 6, 3}, waitingTimes(schedule.Results))

	for _, slice := range schedule.Gantt {
		assert.LessOrEqual(t, slice.Stop-slice.Start, int64(2))
	}
}

func TestRoundRobinArrivalsPrecedeRequeue(t *testing.T) {
	schedule, err := RoundRobin([]Process{
		{ProcessID: 1, ArrivalTime: 0, BurstDuration: 4},
		{ProcessID: 2, ArrivalTime: 2, BurstDuration: 2},
	}, 2)
	require.NoError(t, err)

	// Process 2 arrives exactly when process 1's slice ends; it must enter
	// the queue ahead of the requeued process 1.
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 4},
		{PID: 1, Start: 4, Stop: 6},
	}, schedule.Gantt)
}

func TestRoundRobinLargeQuantumDegeneratesToFCFS(t *testing.T) {
	processes := exampleProcesses()

	rr, err := RoundRobin(processes, 100)
	require.NoError(t, err)
	fcfs, err := FCFS(processes)
	require.NoError(t, err)

	assert.Equal(t, fcfs.Gantt, rr.Gantt)
	assert.Equal(t, fcfs.Results, rr.Results)
}

func TestRoundRobinQuantum1MaximizesPreemption(t *testing.T) {
	schedule, err := RoundRobin(exampleProcesses(), 1)
	require.NoError(t, err)

	// One unit-length slice per unit of burst time.
	assert.Len(t, schedule.Gantt, 18)
	for _, slice := range schedule.Gantt {
		assert.Equal(t, int64(1), slice.Stop-slice.Start)
	}
}

func TestRoundRobinIdleGapJumpsToNextArrival(t *testing.T) {
	schedule, err := RoundRobin([]Process{
		{ProcessID: 1, ArrivalTime: 0, BurstDuration: 2},
		{ProcessID: 2, ArrivalTime: 6, BurstDuration: 2},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 6, Stop: 8},
	}, schedule.Gantt)
	assert.Equal(t, []int64{0, 0}, waitingTimes(schedule.Results))
}

func TestRoundRobinInvalidQuantum(t *testing.T) {
	for _, quantum := range []int64{0, -3} {
		_, err := RoundRobin(exampleProcesses(), quantum)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
	}
}

func TestRoundRobinEmptyInput(t *testing.T) {
	_, err := RoundRobin(nil, 2)
	assert.ErrorIs(t, err, ErrNoProcesses)
}
