package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"ashram-bot/internal/conversation"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	seen map[int64][]int
}

func (r *recorder) handle(_ context.Context, in telegram.Inbound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[in.UserID] = append(r.seen[in.UserID], in.UpdateID)
}

func (r *recorder) updates(userID int64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.seen[userID]...)
}

func queued(d *Dispatcher, userID int64) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if q, ok := d.queues[userID]; ok {
		return q.Len()
	}
	return 0
}

func inbound(userID int64, updateID int) telegram.Inbound {
	return telegram.Inbound{UserID: userID, ChatID: userID, UpdateID: updateID, Event: conversation.TextEvent("x")}
}

func TestDispatcherKeepsPerUserOrder(t *testing.T) {
	rec := &recorder{seen: make(map[int64][]int)}
	d := NewDispatcher(context.Background(), rec.handle, logger.NewNopLogger())

	var want []int
	for i := 1; i <= 200; i++ {
		d.Dispatch(inbound(int64(i%3), i))
		if i%3 == 1 {
			want = append(want, i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))

	assert.Equal(t, want, rec.updates(1))
	assert.Len(t, rec.updates(0), 66)
	assert.Len(t, rec.updates(2), 67)
}

func TestDispatcherUsersDoNotBlockEachOther(t *testing.T) {
	release := make(chan struct{})
	handled := make(chan int64, 2)
	d := NewDispatcher(context.Background(), func(_ context.Context, in telegram.Inbound) {
		if in.UserID == 1 {
			<-release
		}
		handled <- in.UserID
	}, logger.NewNopLogger())

	d.Dispatch(inbound(1, 1))
	d.Dispatch(inbound(1, 2))
	d.Dispatch(inbound(2, 3))

	select {
	case id := <-handled:
		assert.Equal(t, int64(2), id)
	case <-time.After(2 * time.Second):
		t.Fatal("second user was blocked by the first")
	}
	require.Eventually(t, func() bool { return queued(d, 1) == 1 }, time.Second, 5*time.Millisecond)

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))
}

func TestDispatcherShutdownTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	d := NewDispatcher(context.Background(), func(context.Context, telegram.Inbound) {
		<-release
	}, logger.NewNopLogger())
	d.Dispatch(inbound(1, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	// Updates after shutdown are dropped.
	d.Dispatch(inbound(2, 2))
	assert.Equal(t, 0, queued(d, 2))
}
