//go:build unit

package notifier_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"zenithstays/internal/notifier"
	"zenithstays/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures deliveries and optionally blocks to simulate a
// slow provider.
type recordingNotifier struct {
	mu        sync.Mutex
	delivered []notifier.Owner
	block     chan struct{}
	err       error
}

func (r *recordingNotifier) NotifyOwner(ctx context.Context, owner notifier.Owner, _ notifier.StayDetails) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	r.delivered = append(r.delivered, owner)
	r.mu.Unlock()
	return r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.delivered)
}

func queueConfig(workers, size int) config.NotifierConfig {
	return config.NotifierConfig{
		RequestTimeout:  time.Second,
		Workers:         workers,
		QueueSize:       size,
		ShutdownTimeout: time.Second,
	}
}

func testOwner() notifier.Owner {
	return notifier.Owner{ID: uuid.New(), Username: "host", Phone: "+306900000001"}
}

func testDetails() notifier.StayDetails {
	now := time.Now()
	return notifier.StayDetails{
		Location:     "Lapland",
		CheckInDate:  now.AddDate(0, 0, 7),
		CheckOutDate: now.AddDate(0, 0, 9),
		Guests:       2,
	}
}

func TestQueueDeliversDispatchedTasks(t *testing.T) {
	rec := &recordingNotifier{}
	q := notifier.NewQueue(rec, queueConfig(2, 8), nil)
	q.Start()

	for i := 0; i < 5; i++ {
		q.Dispatch(testOwner(), testDetails())
	}
	q.Stop(time.Second)

	assert.Equal(t, 5, rec.count())
}

func TestQueueDropsWhenSaturated(t *testing.T) {
	block := make(chan struct{})
	rec := &recordingNotifier{block: block}
	q := notifier.NewQueue(rec, queueConfig(1, 1), nil)
	q.Start()

	// First task occupies the worker, second fills the buffer, the rest are
	// dropped without blocking the caller.
	for i := 0; i < 6; i++ {
		q.Dispatch(testOwner(), testDetails())
	}
	close(block)
	q.Stop(time.Second)

	require.LessOrEqual(t, rec.count(), 2)
	require.GreaterOrEqual(t, rec.count(), 1)
}

func TestQueueNotifierErrorDoesNotStopWorkers(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("provider unavailable")}
	q := notifier.NewQueue(rec, queueConfig(1, 8), nil)
	q.Start()

	q.Dispatch(testOwner(), testDetails())
	q.Dispatch(testOwner(), testDetails())
	q.Stop(time.Second)

	assert.Equal(t, 2, rec.count())
}

func TestQueueStopIsIdempotent(t *testing.T) {
	rec := &recordingNotifier{}
	q := notifier.NewQueue(rec, queueConfig(1, 4), nil)
	q.Start()

	q.Stop(time.Second)
	q.Stop(time.Second)
}

func TestQueueDispatchDuringStopDoesNotPanic(t *testing.T) {
	rec := &recordingNotifier{}
	q := notifier.NewQueue(rec, queueConfig(2, 16), nil)
	q.Start()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 50; j++ {
				q.Dispatch(testOwner(), testDetails())
			}
		}()
	}

	close(start)
	q.Stop(time.Second)
	wg.Wait()

	// Dispatches racing the shutdown are either delivered or dropped,
	// never sent on the closed channel.
	assert.LessOrEqual(t, rec.count(), 8*50)
}
