package scheduler

import "container/heap"

// runNonPreemptive drives SJF and Priority scheduling: at every decision
// point (start, and each completion) the arrived-but-not-run process with the
// smallest key runs to completion. When nothing has arrived yet the clock
// jumps to the next arrival.
func runNonPreemptive(processes []Process, key func(Process) int64) *Schedule {
	st := newSimState(processes)
	ready := &readyQueue{processes: processes, key: key}
	heap.Init(ready)
	gantt := make([]TimeSlice, 0, len(processes))

	var clock int64
	next := 0 // position in st.order of the earliest process not yet admitted

	admit := func() {
		for next < len(st.order) && processes[st.order[next]].ArrivalTime <= clock {
			st.state[st.order[next]] = stateReady
			heap.Push(ready, st.order[next])
			next++
		}
	}

	for completed := 0; completed < len(processes); completed++ {
		admit()
		if ready.Len() == 0 {
			clock = processes[st.order[next]].ArrivalTime
			admit()
		}

		i := heap.Pop(ready).(int)
		p := processes[i]
		st.state[i] = stateRunning
		start := clock
		clock += p.BurstDuration
		st.complete(i, clock)
		gantt = append(gantt, TimeSlice{PID: p.ProcessID, Start: start, Stop: clock})
	}

	return &Schedule{Gantt: gantt, Results: st.results(processes)}
}
