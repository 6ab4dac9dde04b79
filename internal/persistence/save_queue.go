package persistence

import (
	"context"
	"log"
	"sync"
	"time"

	model "checklist.com/daily-checklist/pkg/models"
)

const saveTimeout = 10 * time.Second

type flushWaiter struct {
	seq  uint64
	done chan struct{}
}

// SaveQueue writes snapshots on a single worker. Only the newest pending
// snapshot is kept, so the last enqueued snapshot is the one that lands and
// Enqueue never waits on storage. Failed writes are logged and dropped.
type SaveQueue struct {
	adapter *Adapter
	signal  chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	pending *model.AppState
	seq     uint64
	written uint64
	waiters []flushWaiter
	closed  bool
}

func NewSaveQueue(adapter *Adapter) *SaveQueue {
	q := &SaveQueue{
		adapter: adapter,
		signal:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}

	q.wg.Add(1)
	go q.worker()

	return q
}

// Enqueue replaces the pending snapshot with state and returns immediately.
func (q *SaveQueue) Enqueue(state model.AppState) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		log.Println("save queue: closed, snapshot dropped")
		return false
	}
	q.pending = &state
	q.seq++
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// Flush waits until every snapshot enqueued before the call has been written.
func (q *SaveQueue) Flush(ctx context.Context) error {
	q.mu.Lock()
	if q.closed || q.written >= q.seq {
		q.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	q.waiters = append(q.waiters, flushWaiter{seq: q.seq, done: done})
	q.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *SaveQueue) worker() {
	defer q.wg.Done()

	for {
		select {
		case <-q.signal:
			q.drain()
		case <-q.stop:
			q.drain()
			q.releaseWaiters(true)
			return
		}
	}
}

func (q *SaveQueue) drain() {
	for {
		q.mu.Lock()
		state, target := q.pending, q.seq
		q.pending = nil
		q.mu.Unlock()

		if state == nil {
			return
		}
		q.write(*state)

		q.mu.Lock()
		q.written = target
		q.mu.Unlock()
		q.releaseWaiters(false)
	}
}

func (q *SaveQueue) releaseWaiters(all bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.waiters[:0]
	for _, w := range q.waiters {
		if all || w.seq <= q.written {
			close(w.done)
			continue
		}
		kept = append(kept, w)
	}
	q.waiters = kept
}

func (q *SaveQueue) write(state model.AppState) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := q.adapter.Save(ctx, state); err != nil {
		log.Printf("save queue: failed to persist state: %v", err)
	}
}

// Shutdown stops accepting snapshots and waits for the pending write to
// finish. It returns false if ctx expired while the worker was still writing.
func (q *SaveQueue) Shutdown(ctx context.Context) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return true
	}
	q.closed = true
	close(q.stop)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("save queue drained")
		return true
	case <-ctx.Done():
		log.Println("save queue shutdown timed out, pending snapshot abandoned")
		return false
	}
}
