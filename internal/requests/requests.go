// Package requests holds the wire types and input validation for the HTTP
// boundary. The engine assumes well-formed input, so every field-level check
// (arrival >= 0, burst > 0, priority >= 1, quantum > 0) happens here before
// anything reaches it.
package requests

import (
	"errors"
	"fmt"

	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
	"github.com/ShettyBro/scheduling-simulator/internal/stats"
)

var ErrValidation = errors.New("invalid request")

type (
	ProcessRequest struct {
		ID          int64 `json:"id"`
		ArrivalTime int64 `json:"arrivalTime"`
		BurstTime   int64 `json:"burstTime"`
		Priority    int64 `json:"priority"`
	}

	ScheduleRequest struct {
		Processes []ProcessRequest `json:"processes"`
		Quantum   int64            `json:"quantum,omitempty"`
	}

	IntervalResponse struct {
		ProcessID int64 `json:"processId"`
		Start     int64 `json:"start"`
		End       int64 `json:"end"`
	}

	ResultResponse struct {
		ID             int64 `json:"id"`
		ArrivalTime    int64 `json:"arrivalTime"`
		BurstTime      int64 `json:"burstTime"`
		Priority       int64 `json:"priority"`
		WaitingTime    int64 `json:"waitingTime"`
		TurnaroundTime int64 `json:"turnaroundTime"`
	}

	ScheduleResponse struct {
		Timeline       []IntervalResponse `json:"timeline"`
		Results        []ResultResponse   `json:"results"`
		StarvationRisk *bool              `json:"starvationRisk,omitempty"`
		Stats          stats.Summary      `json:"stats"`
	}
)

// Validate checks the contract the engine assumes. Priority values are only
// checked when the priority algorithm will actually read them, and the
// quantum only when round-robin will.
func (r *ScheduleRequest) Validate(alg scheduler.Algorithm) error {
	if len(r.Processes) == 0 {
		return fmt.Errorf("%w: processes must not be empty", ErrValidation)
	}
	for _, p := range r.Processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d: arrivalTime must be >= 0", ErrValidation, p.ID)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d: burstTime must be positive", ErrValidation, p.ID)
		}
		if alg == scheduler.AlgorithmPriority && p.Priority < 1 {
			return fmt.Errorf("%w: process %d: priority must be >= 1", ErrValidation, p.ID)
		}
	}
	if alg == scheduler.AlgorithmRoundRobin && r.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive", ErrValidation)
	}
	return nil
}

// EngineInput converts the request into the engine's process records.
func (r *ScheduleRequest) EngineInput() []scheduler.Process {
	processes := make([]scheduler.Process, len(r.Processes))
	for i, p := range r.Processes {
		processes[i] = scheduler.Process{
			ProcessID:     p.ID,
			ArrivalTime:   p.ArrivalTime,
			BurstDuration: p.BurstTime,
			Priority:      p.Priority,
		}
	}
	return processes
}

// NewScheduleResponse maps a finished schedule onto the wire shape, including
// the caller-side aggregate stats.
func NewScheduleResponse(s *scheduler.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		Timeline:       make([]IntervalResponse, len(s.Gantt)),
		Results:        make([]ResultResponse, len(s.Results)),
		StarvationRisk: s.StarvationRisk,
		Stats:          stats.Summarize(s),
	}
	for i, slice := range s.Gantt {
		resp.Timeline[i] = IntervalResponse{ProcessID: slice.PID, Start: slice.Start, End: slice.Stop}
	}
	for i, r := range s.Results {
		resp.Results[i] = ResultResponse{
			ID:             r.ProcessID,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstDuration,
			Priority:       r.Priority,
			WaitingTime:    r.WaitingTime,
			TurnaroundTime: r.TurnaroundTime,
		}
	}
	return resp
}
