package scheduler

import "fmt"

// FCFS runs first-come-first-serve scheduling: processes execute to
// completion in (arrival time, process ID) order, each producing exactly one
// time slice.
func FCFS(processes []Process) (*Schedule, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", ErrNoProcesses)
	}

	st := newSimState(processes)
	gantt := make([]TimeSlice, 0, len(processes))
	var clock int64

	for _, i := range st.order {
		p := processes[i]
		if clock < p.ArrivalTime {
			// CPU idles until the next arrival; the gantt chart keeps the gap.
			clock = p.ArrivalTime
		}
		st.state[i] = stateRunning
		start := clock
		clock += p.BurstDuration
		st.complete(i, clock)
		gantt = append(gantt, TimeSlice{PID: p.ProcessID, Start: start, Stop: clock})
	}

	return &Schedule{Gantt: gantt, Results: st.results(processes)}, nil
}
