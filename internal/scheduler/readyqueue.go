package scheduler

// readyQueue is a min-heap of input indexes ordered by a per-algorithm key,
// with ties broken by earlier arrival time and then smaller process ID so
// that pop order is total and reproducible.
type readyQueue struct {
	processes []Process
	key       func(Process) int64
	idx       []int
}

func (q *readyQueue) Len() int { return len(q.idx) }

func (q *readyQueue) Less(i, j int) bool {
	a, b := q.processes[q.idx[i]], q.processes[q.idx[j]]
	if ka, kb := q.key(a), q.key(b); ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessID < b.ProcessID
}

func (q *readyQueue) Swap(i, j int) {
	q.idx[i], q.idx[j] = q.idx[j], q.idx[i]
}

func (q *readyQueue) Push(x any) {
	q.idx = append(q.idx, x.(int))
}

func (q *readyQueue) Pop() any {
	old := q.idx
	n := len(old)
	item := old[n-1]
	q.idx = old[:n-1]
	return item
}
