package asyncload

import (
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Loader owns an admission graph and a bounded pool of workers that
// drain its ready queue. One Loader can host an arbitrary number of
// Schedule calls over its lifetime; Start and Stop toggle whether the
// pool is actively dispatching, independent of admission, so jobs
// scheduled while stopped simply queue up for the next Start.
type Loader struct {
	mu       sync.Mutex
	cond     *sync.Cond
	admitted map[jobID]*Job
	ready    readyQueue
	seq      int64

	running      bool
	closed       bool
	pendingCount int

	maxThreads int
	sem        *semaphore.Weighted

	// inflight tracks every body goroutine the dispatcher has ever
	// spawned, so Close can drain them the way the teacher's
	// ParallelRunner drains a wave with errgroup — here there is no
	// wave boundary, so it simply accumulates for the loader's whole
	// lifetime and is waited on exactly once, at teardown.
	inflight *errgroup.Group

	totalThreads  Gauge
	activeThreads Gauge
	observer      Observer
}

// LoaderOption configures optional behavior on New.
type LoaderOption func(*Loader)

// WithObserver attaches an Observer that is notified of every job's
// scheduling and terminal outcome.
func WithObserver(o Observer) LoaderOption {
	return func(l *Loader) { l.observer = o }
}

// New constructs a Loader with a fixed worker budget of maxThreads.
// totalThreads and activeThreads are injected gauges the Loader keeps
// current as the pool's size and load change; pass a noop Gauge (or
// nil) if the caller doesn't care.
func New(totalThreads, activeThreads Gauge, maxThreads int, opts ...LoaderOption) *Loader {
	if totalThreads == nil {
		totalThreads = noopGauge{}
	}
	if activeThreads == nil {
		activeThreads = noopGauge{}
	}
	l := &Loader{
		admitted:      make(map[jobID]*Job),
		maxThreads:    maxThreads,
		sem:           semaphore.NewWeighted(int64(maxThreads)),
		inflight:      &errgroup.Group{},
		totalThreads:  totalThreads,
		activeThreads: activeThreads,
	}
	l.cond = sync.NewCond(&l.mu)
	for _, opt := range opts {
		opt(l)
	}
	for i := 0; i < maxThreads; i++ {
		totalThreads.Inc()
	}
	go l.dispatchLoop()
	return l
}

// GetMaxThreads returns the pool's fixed worker budget.
func (l *Loader) GetMaxThreads() int { return l.maxThreads }

// ScheduleOption customizes a single Schedule call.
type ScheduleOption func(*scheduleConfig)

type scheduleConfig struct {
	priority Priority
}

// WithPriority sets the admission priority for newly admitted jobs in
// this Schedule call. It has no effect on jobs that were already
// admitted by an earlier call unless p is greater than their current
// priority, in which case their priority is raised to p (max wins).
func WithPriority(p Priority) ScheduleOption {
	return func(c *scheduleConfig) { c.priority = p }
}

// Schedule admits jobs and their transitive dependencies into the
// loader's graph and returns a Task owning whatever was newly admitted
// by this call. It fails with a KindScheduleFailed error, admitting
// nothing, if the reachable closure contains a dependency cycle.
func (l *Loader) Schedule(jobs []*Job, opts ...ScheduleOption) (*Task, error) {
	cfg := scheduleConfig{priority: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	closure := closeOver(jobs)
	if cycle := detectCycle(closure); cycle != nil {
		return nil, cycleError(cycle)
	}
	if err := validateWithToposort(closure); err != nil {
		return nil, cycleError(namesOf(closure))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	task := newTask(l)
	admittedCount := 0
	for _, j := range closure {
		if existing, ok := l.admitted[j.id]; ok {
			if cfg.priority > existing.Priority() {
				existing.setPriority(cfg.priority)
				l.bumpReadyPriorityLocked(existing)
			}
			continue
		}

		j.setPriority(cfg.priority)
		j.loader = l
		j.admitted = true
		l.admitted[j.id] = j
		l.pendingCount++
		admittedCount++
		for _, dep := range j.dependencies {
			dep.dependents = append(dep.dependents, j)
		}
		if j.unfinishedCount() == 0 {
			l.pushReadyLocked(j)
		}
		task.addJob(j)

		if l.observer != nil {
			l.observer.JobScheduled(j.name, j.Priority())
		}
	}
	l.cond.Broadcast()

	if l.observer != nil {
		if digest, err := BatchDigest(closure, cfg.priority); err == nil {
			l.observer.BatchScheduled(digest, admittedCount)
		}
	}
	return task, nil
}

func namesOf(jobs []*Job) []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.name
	}
	return names
}

// Start enables dispatch. Jobs already ready are picked up immediately
// by the dispatcher goroutine, which runs for the Loader's entire
// lifetime and simply idles while not running.
func (l *Loader) Start() {
	l.mu.Lock()
	l.running = true
	l.cond.Broadcast()
	l.mu.Unlock()
	if l.observer != nil {
		l.observer.PoolStarted()
	}
}

// Stop disables further dispatch. Jobs currently executing run to
// completion; jobs merely ready remain queued until the next Start.
func (l *Loader) Stop() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()
	if l.observer != nil {
		l.observer.PoolStopped()
	}
}

// Wait blocks until every job ever admitted to this loader has reached
// a terminal status — including ones admitted after Wait was called,
// provided they were admitted before the pending count reaches zero.
func (l *Loader) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.pendingCount > 0 {
		l.cond.Wait()
	}
}

// Close stops the dispatcher goroutine permanently and blocks until
// every body goroutine it ever spawned has returned. A closed Loader
// cannot be restarted; it exists for test teardown and for embedding
// applications that replace their Loader at runtime, where letting a
// stale body outlive the Loader that spawned it would be a leak.
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	l.running = false
	l.cond.Broadcast()
	l.mu.Unlock()
	_ = l.inflight.Wait()
	for i := 0; i < l.maxThreads; i++ {
		l.totalThreads.Dec()
	}
}
