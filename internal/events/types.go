package events

import "time"

// Event is the base interface for all events published on the bus.
type Event interface {
	EventType() string
	JobName() string
}

// Topic constants.
const (
	TopicJob      = "job"
	TopicProgress = "progress"
)

// Event type constants.
const (
	EventTypeJobScheduled   = "job.scheduled"
	EventTypeJobStarted     = "job.started"
	EventTypeJobSucceeded   = "job.succeeded"
	EventTypeJobFailed      = "job.failed"
	EventTypeBatchScheduled = "job.batch_scheduled"
	EventTypePoolStarted    = "pool.started"
	EventTypePoolStopped    = "pool.stopped"
	EventTypeProgress       = "progress.update"
)

// JobScheduledEvent is published when a job is admitted to a loader.
type JobScheduledEvent struct {
	Name      string
	Priority  int
	Timestamp time.Time
}

func (e JobScheduledEvent) EventType() string { return EventTypeJobScheduled }
func (e JobScheduledEvent) JobName() string   { return e.Name }

// JobStartedEvent is published when a worker begins running a job's body.
type JobStartedEvent struct {
	Name      string
	Timestamp time.Time
}

func (e JobStartedEvent) EventType() string { return EventTypeJobStarted }
func (e JobStartedEvent) JobName() string   { return e.Name }

// JobSucceededEvent is published when a job's body returns nil.
type JobSucceededEvent struct {
	Name      string
	Timestamp time.Time
}

func (e JobSucceededEvent) EventType() string { return EventTypeJobSucceeded }
func (e JobSucceededEvent) JobName() string   { return e.Name }

// JobFailedEvent is published when a job reaches FAILED, whatever the
// cause — its own body, cancellation, or a failed dependency.
type JobFailedEvent struct {
	Name      string
	Kind      string
	Cause     error
	Timestamp time.Time
}

func (e JobFailedEvent) EventType() string { return EventTypeJobFailed }
func (e JobFailedEvent) JobName() string   { return e.Name }

// BatchScheduledEvent is published once per Schedule call, alongside
// the per-job JobScheduledEvents it also fires. Digest lets a log
// consumer correlate repeated schedule calls for the same batch
// without comparing job-name slices itself.
type BatchScheduledEvent struct {
	Digest    string
	Admitted  int
	Timestamp time.Time
}

func (e BatchScheduledEvent) EventType() string { return EventTypeBatchScheduled }
func (e BatchScheduledEvent) JobName() string   { return "" }

// PoolStartedEvent is published when a Loader's dispatch is enabled.
type PoolStartedEvent struct {
	Timestamp time.Time
}

func (e PoolStartedEvent) EventType() string { return EventTypePoolStarted }
func (e PoolStartedEvent) JobName() string   { return "" }

// PoolStoppedEvent is published when a Loader's dispatch is disabled.
type PoolStoppedEvent struct {
	Timestamp time.Time
}

func (e PoolStoppedEvent) EventType() string { return EventTypePoolStopped }
func (e PoolStoppedEvent) JobName() string   { return "" }

// ProgressEvent summarizes loader-wide progress; published periodically
// rather than once per job, so dashboards don't need to tally the
// per-job events themselves.
type ProgressEvent struct {
	Scheduled int
	Succeeded int
	Failed    int
	Pending   int
	Timestamp time.Time
}

func (e ProgressEvent) EventType() string { return EventTypeProgress }
func (e ProgressEvent) JobName() string   { return "" }
