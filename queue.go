package asyncload

import "container/heap"

// readyItem is one entry in the ready queue: a job whose dependencies
// have all resolved, waiting to be handed to a worker.
type readyItem struct {
	job      *Job
	priority int64
	seq      int64 // admission-order tiebreaker, lower dispatches first
}

// readyQueue is a max-heap ordered by (priority desc, seq asc), giving
// FIFO-within-priority dispatch order. It implements container/heap.
type readyQueue []*readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) {
	*q = append(*q, x.(*readyItem))
}

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// indexOf returns the heap index holding job, or -1.
func (q readyQueue) indexOf(j *Job) int {
	for i, it := range q {
		if it.job == j {
			return i
		}
	}
	return -1
}

func (l *Loader) pushReadyLocked(j *Job) {
	l.seq++
	heap.Push(&l.ready, &readyItem{job: j, priority: int64(j.Priority()), seq: l.seq})
}

// removeFromReadyLocked removes j from the ready queue if present and
// reports whether it was found there.
func (l *Loader) removeFromReadyLocked(j *Job) bool {
	idx := l.ready.indexOf(j)
	if idx < 0 {
		return false
	}
	heap.Remove(&l.ready, idx)
	return true
}

// bumpReadyPriorityLocked re-heapifies j's entry after its priority
// changed. It is a no-op if j isn't currently queued (e.g. it's still
// blocked on dependencies, or already executing).
func (l *Loader) bumpReadyPriorityLocked(j *Job) {
	idx := l.ready.indexOf(j)
	if idx < 0 {
		return
	}
	l.ready[idx].priority = int64(j.Priority())
	heap.Fix(&l.ready, idx)
}
