package asyncload

import "github.com/google/uuid"

// jobID is the scheduler-internal identity of a Job. Keying the
// dependents registry off an opaque id rather than chasing pointers in
// both directions avoids the shared-ownership cycle the data model would
// otherwise form between a job and its dependents.
type jobID uuid.UUID

func newJobID() jobID {
	return jobID(uuid.New())
}

func (id jobID) String() string {
	return uuid.UUID(id).String()
}

// taskID is the scheduler-internal identity of a Task, used only for
// diagnostics (it never appears in error messages a caller matches on).
type taskID uuid.UUID

func newTaskID() taskID {
	return taskID(uuid.New())
}

func (id taskID) String() string {
	return uuid.UUID(id).String()
}
