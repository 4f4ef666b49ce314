package scheduler

import "sort"

type procState uint8

const (
	stateWaiting procState = iota
	stateReady
	stateRunning
	stateCompleted
)

// simState is the per-run bookkeeping arena. The input processes stay
// untouched; all mutable simulation state lives here, keyed by input index.
type simState struct {
	order      []int // input indexes sorted by (arrival time, process ID)
	state      []procState
	remaining  []int64
	completion []int64
}

func newSimState(processes []Process) *simState {
	n := len(processes)
	s := &simState{
		order:      make([]int, n),
		state:      make([]procState, n),
		remaining:  make([]int64, n),
		completion: make([]int64, n),
	}
	for i := range processes {
		s.order[i] = i
		s.remaining[i] = processes[i].BurstDuration
	}
	sort.Slice(s.order, func(a, b int) bool {
		pa, pb := processes[s.order[a]], processes[s.order[b]]
		if pa.ArrivalTime != pb.ArrivalTime {
			return pa.ArrivalTime < pb.ArrivalTime
		}
		return pa.ProcessID < pb.ProcessID
	})
	return s
}

func (s *simState) complete(i int, at int64) {
	s.state[i] = stateCompleted
	s.remaining[i] = 0
	s.completion[i] = at
}

// results assembles per-process timings in input order.
func (s *simState) results(processes []Process) []ProcessResult {
	out := make([]ProcessResult, len(processes))
	for i, p := range processes {
		turnaround := s.completion[i] - p.ArrivalTime
		out[i] = ProcessResult{
			ProcessID:      p.ProcessID,
			ArrivalTime:    p.ArrivalTime,
			BurstDuration:  p.BurstDuration,
			Priority:       p.Priority,
			WaitingTime:    turnaround - p.BurstDuration,
			TurnaroundTime: turnaround,
		}
	}
	return out
}
