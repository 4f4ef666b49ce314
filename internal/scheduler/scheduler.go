package scheduler

import "fmt"

// Algorithm selects one of the supported scheduling algorithms.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmRoundRobin Algorithm = "rr"
)

// Algorithms lists every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Title returns the human-readable algorithm name used in rendered output.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmFCFS:
		return "First-come, first-serve"
	case AlgorithmSJF:
		return "Shortest-job-first"
	case AlgorithmPriority:
		return "Priority"
	case AlgorithmRoundRobin:
		return "Round-robin"
	default:
		return string(a)
	}
}

// Run dispatches to the selected algorithm. The quantum applies to
// round-robin only and is ignored by the others.
func Run(alg Algorithm, processes []Process, quantum int64) (*Schedule, error) {
	switch alg {
	case AlgorithmFCFS:
		return FCFS(processes)
	case AlgorithmSJF:
		return SJF(processes)
	case AlgorithmPriority:
		return Priority(processes)
	case AlgorithmRoundRobin:
		return RoundRobin(processes, quantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
