// Package scheduler implements CPU process-scheduling simulations: given a
// set of processes it produces an execution timeline (gantt chart) and
// per-process waiting/turnaround times for FCFS, SJF, Priority and
// Round-robin scheduling.
//
// Every scheduling function is a pure function of its input: the caller's
// process slice is never reordered or mutated, and repeated calls with equal
// input produce identical output.
package scheduler

import "errors"

type (
	// Process is a single unit of work to schedule. ProcessID doubles as the
	// tie-break key, so it should be unique; duplicate IDs are a caller error.
	Process struct {
		ProcessID     int64
		ArrivalTime   int64
		BurstDuration int64
		Priority      int64
	}

	// TimeSlice is one contiguous run interval on the gantt chart.
	// Slices never overlap and are emitted in start order; idle CPU time
	// shows up as a gap between slices, not as a slice.
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}

	// ProcessResult holds the timing outcome for one input process.
	ProcessResult struct {
		ProcessID      int64
		ArrivalTime    int64
		BurstDuration  int64
		Priority       int64
		WaitingTime    int64
		TurnaroundTime int64
	}

	// Schedule is the complete output of one simulation run. Results are in
	// input order, not execution order. StarvationRisk is set only by the
	// Priority scheduler; nil means "not applicable", not "false".
	Schedule struct {
		Gantt          []TimeSlice
		Results        []ProcessResult
		StarvationRisk *bool
	}
)

var (
	ErrNoProcesses      = errors.New("no processes to schedule")
	ErrInvalidQuantum   = errors.New("invalid quantum")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
