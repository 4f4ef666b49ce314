package scheduler

import "fmt"

// RoundRobin runs preemptive round-robin scheduling with the given time
// quantum. The head of a FIFO ready queue runs for min(quantum, remaining)
// time units per turn, so a process may produce several time slices.
//
// Processes arriving during a slice join the queue before the preempted
// process is re-enqueued; this ordering is load-bearing for fairness and for
// deterministic output.
func RoundRobin(processes []Process, quantum int64) (*Schedule, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", ErrNoProcesses)
	}
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidQuantum, quantum)
	}

	st := newSimState(processes)
	queue := make([]int, 0, len(processes))
	gantt := make([]TimeSlice, 0, len(processes))

	var clock int64
	next := 0 // position in st.order of the earliest process not yet enqueued

	admit := func(until int64) {
		for next < len(st.order) && processes[st.order[next]].ArrivalTime <= until {
			st.state[st.order[next]] = stateReady
			queue = append(queue, st.order[next])
			next++
		}
	}

	admit(clock)
	for len(queue) > 0 || next < len(st.order) {
		if len(queue) == 0 {
			// CPU idles until the next arrival; no slice is emitted for the gap.
			clock = processes[st.order[next]].ArrivalTime
			admit(clock)
		}

		i := queue[0]
		queue = queue[1:]
		p := processes[i]

		slice := quantum
		if st.remaining[i] < slice {
			slice = st.remaining[i]
		}

		st.state[i] = stateRunning
		start := clock
		clock += slice
		st.remaining[i] -= slice
		gantt = append(gantt, TimeSlice{PID: p.ProcessID, Start: start, Stop: clock})

		// Two-phase turn end: absorb everything that arrived during the slice
		// first, then re-enqueue the preempted process behind the newcomers.
		admit(clock)
		if st.remaining[i] > 0 {
			st.state[i] = stateReady
			queue = append(queue, i)
		} else {
			st.complete(i, clock)
		}
	}

	return &Schedule{Gantt: gantt, Results: st.results(processes)}, nil
}
