package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"zenithstays/internal/pkg/config"
)

type task struct {
	owner   Owner
	details StayDetails
}

// Queue runs notifications on a bounded worker pool, decoupled from the
// request path. Dispatch never blocks: when the queue is saturated the task
// is dropped and logged, which is acceptable for a best-effort side channel.
// Each task carries its own timeout so a hung third-party call cannot pin a
// worker indefinitely.
type Queue struct {
	notifier    Notifier
	logger      *slog.Logger
	tasks       chan task
	workers     int
	taskTimeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once

	// mu orders Dispatch's send against Stop's close of the channel. A
	// plain flag check before the send would leave a window where Stop
	// closes the channel between the check and the send.
	mu      sync.RWMutex
	stopped bool
}

func NewQueue(n Notifier, cfg config.NotifierConfig, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Queue{
		notifier:    n,
		logger:      logger,
		tasks:       make(chan task, queueSize),
		workers:     workers,
		taskTimeout: cfg.RequestTimeout,
	}
}

// Start launches the worker goroutines. Call once.
func (q *Queue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.runWorker()
	}
}

// Stop closes the queue and waits for in-flight tasks, up to timeout.
func (q *Queue) Stop(timeout time.Duration) {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		close(q.tasks)
		q.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		q.logger.Warn("notifier queue stop timed out with tasks in flight")
	}
}

func (q *Queue) Dispatch(owner Owner, details StayDetails) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		q.logger.Warn("notifier queue stopped, dropping notification",
			"owner_id", owner.ID.String())
		return
	}
	select {
	case q.tasks <- task{owner: owner, details: details}:
	default:
		q.logger.Warn("notifier queue full, dropping notification",
			"owner_id", owner.ID.String(), "location", details.Location)
	}
}

func (q *Queue) runWorker() {
	defer q.wg.Done()
	for t := range q.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), q.taskTimeout)
		if err := q.notifier.NotifyOwner(ctx, t.owner, t.details); err != nil {
			q.logger.Error("broadcast notification failed",
				"owner_id", t.owner.ID.String(),
				"phone", t.owner.Phone,
				"error", err.Error())
		}
		cancel()
	}
}

var _ Dispatcher = (*Queue)(nil)
