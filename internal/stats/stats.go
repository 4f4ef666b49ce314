// Package stats computes aggregate statistics from a finished schedule.
// These live outside the engine on purpose: collaborators derive averages and
// utilization from the timeline and results, the engine only simulates.
package stats

import "github.com/ShettyBro/scheduling-simulator/internal/scheduler"

// Summary aggregates a schedule for presentation.
type Summary struct {
	AverageWaitingTime    float64 `json:"averageWaitingTime"`
	AverageTurnaroundTime float64 `json:"averageTurnaroundTime"`
	CPUUtilization        float64 `json:"cpuUtilization"`
}

// Summarize computes averages over all results and CPU utilization as total
// burst time over the timeline span. The span starts at the first slice, so
// idle time before the first arrival does not count against utilization.
func Summarize(s *scheduler.Schedule) Summary {
	if s == nil || len(s.Results) == 0 {
		return Summary{}
	}

	var totalWait, totalTurnaround, totalBurst int64
	for _, r := range s.Results {
		totalWait += r.WaitingTime
		totalTurnaround += r.TurnaroundTime
		totalBurst += r.BurstDuration
	}

	n := float64(len(s.Results))
	summary := Summary{
		AverageWaitingTime:    float64(totalWait) / n,
		AverageTurnaroundTime: float64(totalTurnaround) / n,
	}
	if span := s.Gantt[len(s.Gantt)-1].Stop - s.Gantt[0].Start; span > 0 {
		summary.CPUUtilization = float64(totalBurst) / float64(span)
	}
	return summary
}

// Throughput returns completed processes per time unit, measured against the
// last completion time.
func Throughput(s *scheduler.Schedule) float64 {
	if s == nil || len(s.Gantt) == 0 {
		return 0
	}
	last := s.Gantt[len(s.Gantt)-1].Stop
	if last == 0 {
		return 0
	}
	return float64(len(s.Results)) / float64(last)
}
