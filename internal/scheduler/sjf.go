package scheduler

import "fmt"

// SJF runs non-preemptive shortest-job-first scheduling: at each decision
// point the arrived process with the smallest burst duration runs to
// completion. Burst ties fall back to arrival time, then process ID.
func SJF(processes []Process) (*Schedule, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", ErrNoProcesses)
	}
	return runNonPreemptive(processes, func(p Process) int64 { return p.BurstDuration }), nil
}
