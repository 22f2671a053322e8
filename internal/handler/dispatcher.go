package handler

import (
	"container/list"
	"context"
	"sync"

	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/telegram"
)

// HandleFunc processes one update. It must not retain in.
type HandleFunc func(ctx context.Context, in telegram.Inbound)

// Dispatcher runs updates one at a time per user and in arrival order.
// Different users are handled concurrently. A user's goroutine exits as
// soon as their queue is empty.
type Dispatcher struct {
	ctx    context.Context
	handle HandleFunc
	logger logger.ILogger

	mu     sync.Mutex
	queues map[int64]*list.List
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(ctx context.Context, handle HandleFunc, log logger.ILogger) *Dispatcher {
	return &Dispatcher{
		ctx:    ctx,
		handle: handle,
		logger: log,
		queues: make(map[int64]*list.List),
	}
}

// Dispatch enqueues in behind anything already pending for the same user.
// It never blocks on the handler.
func (d *Dispatcher) Dispatch(in telegram.Inbound) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("Dispatcher", "Dropping update after shutdown", map[string]interface{}{
			"update_id": in.UpdateID,
			"user_id":   in.UserID,
		})
		return
	}

	q, running := d.queues[in.UserID]
	if !running {
		q = list.New()
		d.queues[in.UserID] = q
	}
	q.PushBack(in)

	if !running {
		d.wg.Add(1)
		go d.drain(in.UserID, q)
	}
}

// Shutdown stops accepting updates and waits for queued ones to finish or
// for ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) drain(userID int64, q *list.List) {
	defer d.wg.Done()

	for {
		d.mu.Lock()
		front := q.Front()
		if front == nil {
			delete(d.queues, userID)
			d.mu.Unlock()
			return
		}
		q.Remove(front)
		d.mu.Unlock()

		d.handle(d.ctx, front.Value.(telegram.Inbound))
	}
}
