// Package asyncload schedules named units of work ("jobs") that declare
// prerequisites on one another, and runs them across a bounded pool of
// worker goroutines in dependency order.
//
// Jobs are grouped into batches via Schedule, which returns a Task handle
// used to cancel or merge that batch. A Loader owns the worker pool; it
// must be started before any admitted job dispatches, and may be stopped
// and restarted without losing admitted-but-undispatched jobs.
//
// # Quick start
//
//	l := asyncload.New(totalGauge, activeGauge, 8)
//	jobA := asyncload.NewJob(nil, "load-schema", loadSchema)
//	jobB := asyncload.NewJob([]*asyncload.Job{jobA}, "load-tables", loadTables)
//	task, err := l.Schedule([]*asyncload.Job{jobA, jobB})
//	l.Start()
//	defer task.Remove()
//	err = jobB.Wait()
//
// asyncload has no opinion on logging, metrics collection, or
// configuration file formats; those are left to the surrounding
// application, which is why the library only needs two injected Gauge
// handles rather than a metrics registry.
package asyncload
