package asyncload

import (
	"context"
	"fmt"
)

// dispatchLoop is the Loader's single long-lived goroutine. It does
// not itself bound concurrency by its own count — that's sem's job —
// it only pops ready jobs and hands each to a fresh goroutine, one per
// job, acquiring a semaphore unit first so at most maxThreads bodies
// are ever running (as opposed to merely dispatched-and-possibly-
// parked-in-Await) at once.
func (l *Loader) dispatchLoop() {
	for {
		l.mu.Lock()
		for !l.closed && (!l.running || l.ready.Len() == 0) {
			l.cond.Wait()
		}
		if l.closed {
			l.mu.Unlock()
			return
		}
		item := l.ready[0]
		j := item.job
		l.removeFromReadyLocked(j)
		j.markExecuting()
		l.mu.Unlock()

		if err := l.sem.Acquire(context.Background(), 1); err != nil {
			continue
		}
		l.activeThreads.Inc()
		if l.observer != nil {
			l.observer.JobStarted(j.name)
		}
		l.inflight.Go(func() error {
			l.runJob(j)
			return nil
		})
	}
}

// runJob executes j's body and feeds its outcome back into the
// propagation machinery in propagation.go.
func (l *Loader) runJob(j *Job) {
	defer func() {
		l.sem.Release(1)
		l.activeThreads.Dec()
	}()

	err := runBody(j)
	if err != nil {
		l.failJob(j, &LoadError{Kind: KindFailed, Job: j.name, Err: err})
		return
	}
	l.succeedJob(j)
}

// runBody isolates a body's panic into an error rather than letting it
// take down the dispatcher goroutine's caller, so one misbehaving job
// only fails that job (and cascades DEPENDENCY_FAILED to its
// dependents) instead of crashing the whole pool.
func runBody(j *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return j.body(j)
}
