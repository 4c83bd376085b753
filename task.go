package asyncload

import "sync"

// Task is the handle returned by Schedule. It owns the set of jobs
// newly admitted by that particular Schedule call (not the jobs it
// merely traversed through because they were already admitted by an
// earlier call) and is the unit of cancellation: Remove cancels every
// job this task owns that hasn't started, and waits for the rest.
type Task struct {
	id     taskID
	loader *Loader

	mu   sync.Mutex
	jobs []*Job
}

func newTask(l *Loader) *Task {
	return &Task{id: newTaskID(), loader: l}
}

func (t *Task) addJob(j *Job) {
	t.mu.Lock()
	t.jobs = append(t.jobs, j)
	t.mu.Unlock()
}

// Jobs returns the jobs currently owned by t.
func (t *Task) Jobs() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Job(nil), t.jobs...)
}

// Merge transfers ownership of other's jobs into t and empties other.
// Merging is how a caller grows a batch across several Schedule calls
// while keeping a single handle to cancel or wait on the whole thing;
// it is associative, so the merged task is independent of merge order.
func (t *Task) Merge(other *Task) {
	if t == other {
		return
	}
	other.mu.Lock()
	moved := other.jobs
	other.jobs = nil
	other.mu.Unlock()

	t.mu.Lock()
	t.jobs = append(t.jobs, moved...)
	t.mu.Unlock()
}

// Remove cancels every owned job that has not started executing and
// blocks until every owned job — cancelled, already finished, or
// currently executing — has reached a terminal status. It is safe to
// call more than once; a second call is a no-op.
func (t *Task) Remove() {
	t.mu.Lock()
	jobs := t.jobs
	t.jobs = nil
	t.mu.Unlock()

	if len(jobs) == 0 {
		return
	}
	t.loader.cancelJobs(jobs)
}
