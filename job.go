package asyncload

import (
	"context"
	"sync"
	"sync/atomic"
)

// Status is the lifecycle state of a Job, observable without locking.
type Status int32

const (
	// StatusPending covers both "not yet dispatched" and "currently
	// executing" — the executing substate is hidden from observers per
	// the job execution contract; only WaitersCount and the absence of
	// a terminal status hint at it from the outside.
	StatusPending Status = iota
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Priority is a signed scheduling priority. Smaller is lower; default 0.
type Priority int

// Job is a unit of work with a declared set of prerequisites. Jobs are
// constructed with NewJob and only become live once passed to
// Loader.Schedule; a Job may be constructed (and even reused across
// several Schedule calls) well before any loader exists for it.
type Job struct {
	name         string
	dependencies []*Job // immutable after construction
	body         func(*Job) error

	mu   sync.Mutex // guards the terminal transition and err
	done chan struct{}
	err  error

	status       atomic.Int32
	priority     atomic.Int64
	waitersCount atomic.Int32
	unfinished   atomic.Int32
	executing    atomic.Bool

	// Scheduler bookkeeping below is touched only while the owning
	// Loader's mutex is held; it has no meaning before admission.
	id         jobID
	admitted   bool
	dependents []*Job
	loader     *Loader
}

// NewJob constructs a PENDING job. deps is copied defensively: there is
// no exported way to mutate a Job's dependency set afterwards, and deps
// can only name jobs that already exist, so no cycle can be built
// through the exported API; only code inside this package can wire one
// in (see cycle detection in graph.go).
func NewJob(deps []*Job, name string, body func(*Job) error) *Job {
	j := &Job{
		name:         name,
		dependencies: append([]*Job(nil), deps...),
		body:         body,
		done:         make(chan struct{}),
		id:           newJobID(),
	}
	j.unfinished.Store(int32(len(deps)))
	return j
}

// Name returns the job's human-readable name.
func (j *Job) Name() string { return j.name }

// Status returns the job's current lifecycle state without blocking.
func (j *Job) Status() Status { return Status(j.status.Load()) }

// Priority returns the job's current scheduling priority.
func (j *Job) Priority() Priority { return Priority(j.priority.Load()) }

// WaitersCount reports how many goroutines are currently parked in Wait.
func (j *Job) WaitersCount() int32 { return j.waitersCount.Load() }

func (j *Job) setPriority(p Priority) { j.priority.Store(int64(p)) }

func (j *Job) isExecuting() bool { return j.executing.Load() }

func (j *Job) markExecuting() { j.executing.Store(true) }

func (j *Job) decrementUnfinished() int32 { return j.unfinished.Add(-1) }

func (j *Job) unfinishedCount() int32 { return j.unfinished.Load() }

// setTerminal performs the job's single PENDING -> {SUCCESS, FAILED}
// transition. It reports whether it actually performed the transition;
// a second call (from a racing propagation path, say) is always a
// harmless no-op, which is what keeps invariant 1 true under
// concurrent cascades.
func (j *Job) setTerminal(status Status, err error) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if Status(j.status.Load()) != StatusPending {
		return false
	}
	j.err = err
	j.status.Store(int32(status))
	close(j.done)
	return true
}

// Wait blocks until the job reaches a terminal status, returning the
// job's recorded error (nil on success). It is safe to call from a
// foreign goroutine or, recursively, from within another job's body —
// see Await for the slot-aware variant workers should prefer.
func (j *Job) Wait() error {
	if Status(j.status.Load()) != StatusPending {
		return j.terminalError()
	}

	j.waitersCount.Add(1)
	<-j.done
	j.waitersCount.Add(-1)

	return j.terminalError()
}

func (j *Job) terminalError() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Await is sugar for "wait on dep without occupying a dispatch slot",
// meant to be called by a worker body as self.Await(dep) rather than
// dep.Wait() directly. If self is currently running inside a Loader's
// pool, Await releases self's dispatch slot before blocking and
// reacquires it once dep settles, so a parked worker never counts
// against the pool's concurrency bound and the pool can keep draining
// the ready queue while self is parked.
//
// Calling dep.Wait() directly from within a body is also safe — it
// just holds the dispatch slot for the duration of the wait, which is
// fine as long as the pool has slack. Await exists for the case where
// it might not.
func (j *Job) Await(dep *Job) error {
	if j.loader != nil && j.isExecuting() && j.Status() == StatusPending {
		j.loader.sem.Release(1)
		defer func() { _ = j.loader.sem.Acquire(context.Background(), 1) }()
	}
	return dep.Wait()
}
