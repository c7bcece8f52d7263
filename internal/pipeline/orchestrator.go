package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rosterly/candex/internal/config"
	"github.com/rosterly/candex/internal/segment"
)

// Orchestrator manages the document extraction pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	log   *slog.Logger
	cfg   config.Config
	stats *Stats

	segCfg segment.Config

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewOrchestrator creates the pipeline; call Start to launch workers.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		log:   log,
		cfg:   cfg,
		stats: NewStats(time.Hour),
		segCfg: segment.Config{
			MinPriorLines:   cfg.SegmentMinPriorLines,
			LabelLookahead:  cfg.SegmentLabelLookahead,
			MinSectionWords: cfg.SegmentMinSectionWords,
		},
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.log, o.segCfg, o.cfg.MaxConcurrentExtract, o.stats)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job := <-o.queue:
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. Later Submit calls are refused;
// the queue channel stays open so an in-flight Submit can never panic.
func (o *Orchestrator) Stop() {
	o.stopped.Store(true)
	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	if o.stopped.Load() {
		job.SetStatus(StatusFailed, "shutting_down")
		return fmt.Errorf("pipeline is shutting down")
	}
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// Jobs returns the job store for list/delete handlers.
func (o *Orchestrator) Jobs() *JobStore {
	return o.jobs
}

// Stats returns the extraction stats collector.
func (o *Orchestrator) Stats() *Stats {
	return o.stats
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}
