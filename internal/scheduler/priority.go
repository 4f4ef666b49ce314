package scheduler

import "fmt"

// DefaultStarvationFactor is the heuristic threshold for flagging starvation
// risk: a schedule is flagged when any process waited longer than this factor
// times its own burst duration. It is a warning signal, not a guarantee.
const DefaultStarvationFactor int64 = 3

// Priority runs non-preemptive priority scheduling with the default
// starvation factor. Lower priority values run first; ties fall back to
// arrival time, then process ID.
func Priority(processes []Process) (*Schedule, error) {
	return PriorityWithStarvationFactor(processes, DefaultStarvationFactor)
}

// PriorityWithStarvationFactor is Priority with a caller-chosen starvation
// threshold. The resulting Schedule always carries a non-nil StarvationRisk.
func PriorityWithStarvationFactor(processes []Process, factor int64) (*Schedule, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", ErrNoProcesses)
	}

	schedule := runNonPreemptive(processes, func(p Process) int64 { return p.Priority })

	risk := false
	for _, r := range schedule.Results {
		if r.WaitingTime > factor*r.BurstDuration {
			risk = true
			break
		}
	}
	schedule.StarvationRisk = &risk

	return schedule, nil
}
