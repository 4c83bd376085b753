package asyncload

// Observer receives job lifecycle notifications from a Loader. It is
// entirely optional and, like Gauge, injected rather than looked up
// from a global registry — wire it to internal/events, a logger, or
// leave it nil.
type Observer interface {
	JobScheduled(name string, priority Priority)
	JobStarted(name string)
	JobSucceeded(name string)
	// JobFailed covers every non-success terminal outcome; kind
	// distinguishes a failed body from a cancellation or a failed
	// dependency.
	JobFailed(name string, kind ErrorKind, cause error)
	// BatchScheduled reports one completed Schedule call: digest is a
	// content hash over what was requested (see BatchDigest), and
	// admitted is how many of those jobs were newly admitted by this
	// call rather than already known to the loader.
	BatchScheduled(digest string, admitted int)
	// PoolStarted and PoolStopped report Start/Stop toggling dispatch,
	// independent of any particular job.
	PoolStarted()
	PoolStopped()
}

// notifyTerminal reports j's outcome to l.observer, if any. Caller
// holds l.mu; Observer implementations must not call back into the
// Loader.
func (l *Loader) notifyTerminal(j *Job) {
	if l.observer == nil {
		return
	}
	switch j.Status() {
	case StatusSuccess:
		l.observer.JobSucceeded(j.name)
	case StatusFailed:
		kind, cause := KindFailed, error(nil)
		if le, ok := j.err.(*LoadError); ok {
			kind, cause = le.Kind, le.Err
		}
		l.observer.JobFailed(j.name, kind, cause)
	}
}
