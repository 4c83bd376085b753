// Command loaderdemo schedules a batch of synthetic jobs onto an
// asyncload.Loader and renders their progress live.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/corvidae/asyncload"
	"github.com/corvidae/asyncload/internal/config"
	"github.com/corvidae/asyncload/internal/events"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	batchName := "demo"
	if len(os.Args) > 1 {
		batchName = os.Args[1]
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	batch, ok := cfg.Batches[batchName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown batch %q\n", batchName)
		os.Exit(1)
	}

	bus := events.NewEventBus()
	defer bus.Close()

	totalThreads := &atomicGauge{}
	activeThreads := &atomicGauge{}
	observer := &busObserver{bus: bus}

	loader := asyncload.New(totalThreads, activeThreads, cfg.MaxThreads, asyncload.WithObserver(observer))

	jobs := buildChain(batch.Jobs)
	task, err := loader.Schedule(jobs, asyncload.WithPriority(asyncload.Priority(batch.Priority)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling batch: %v\n", err)
		os.Exit(1)
	}
	loader.Start()

	m := newModel(bus.SubscribeAll(256))
	p := tea.NewProgram(m, tea.WithAltScreen())

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		stop()
		log.Println("Shutdown signal received, cancelling batch...")
		task.Remove()
		loader.Stop()
		p.Quit()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		select {
		case err := <-errChan:
			if err != nil {
				log.Printf("program exit error: %v", err)
			}
		case <-shutdownCtx.Done():
			log.Println("shutdown timeout exceeded, forcing exit")
		}
	}

	loader.Wait()
	if dropped := bus.Dropped(); dropped > 0 {
		log.Printf("Shutdown complete (%d events dropped by a slow subscriber)", dropped)
	} else {
		log.Println("Shutdown complete")
	}
}

// buildChain turns a flat ordered job-name list into a linear
// dependency chain — each job depends on the one before it — which is
// enough to exercise the scheduler's dependency ordering without requiring the
// demo's config format to describe a full graph.
func buildChain(names []string) []*asyncload.Job {
	jobs := make([]*asyncload.Job, 0, len(names))
	var prev *asyncload.Job
	for _, name := range names {
		var deps []*asyncload.Job
		if prev != nil {
			deps = []*asyncload.Job{prev}
		}
		j := asyncload.NewJob(deps, name, simulatedBody(name))
		jobs = append(jobs, j)
		prev = j
	}
	return jobs
}

// simulatedBody stands in for real loading work: a short, randomized
// sleep so the demo's progress bar has something to animate.
func simulatedBody(name string) func(*asyncload.Job) error {
	return func(*asyncload.Job) error {
		time.Sleep(time.Duration(150+rand.Intn(350)) * time.Millisecond)
		return nil
	}
}

// atomicGauge is a minimal asyncload.Gauge for the demo; a real
// embedder would wire this to whatever metrics library it already
// uses instead.
type atomicGauge struct {
	n atomic.Int64
}

func (g *atomicGauge) Inc() { g.n.Add(1) }
func (g *atomicGauge) Dec() { g.n.Add(-1) }

// busObserver adapts asyncload.Observer onto the event bus so the TUI
// model only ever has to know about events.Event, not the loader.
type busObserver struct {
	bus *events.EventBus
}

func (o *busObserver) JobScheduled(name string, priority asyncload.Priority) {
	o.bus.Publish(events.TopicJob, events.JobScheduledEvent{Name: name, Priority: int(priority), Timestamp: time.Now()})
}

func (o *busObserver) BatchScheduled(digest string, admitted int) {
	o.bus.Publish(events.TopicJob, events.BatchScheduledEvent{Digest: digest, Admitted: admitted, Timestamp: time.Now()})
}

func (o *busObserver) PoolStarted() {
	o.bus.Publish(events.TopicJob, events.PoolStartedEvent{Timestamp: time.Now()})
}

func (o *busObserver) PoolStopped() {
	o.bus.Publish(events.TopicJob, events.PoolStoppedEvent{Timestamp: time.Now()})
}

func (o *busObserver) JobStarted(name string) {
	o.bus.Publish(events.TopicJob, events.JobStartedEvent{Name: name, Timestamp: time.Now()})
}

func (o *busObserver) JobSucceeded(name string) {
	o.bus.Publish(events.TopicJob, events.JobSucceededEvent{Name: name, Timestamp: time.Now()})
}

func (o *busObserver) JobFailed(name string, kind asyncload.ErrorKind, cause error) {
	o.bus.Publish(events.TopicJob, events.JobFailedEvent{Name: name, Kind: kind.String(), Cause: cause, Timestamp: time.Now()})
}
