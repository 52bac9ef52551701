package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
)

type fakeSender struct {
	mu     sync.Mutex
	chatID int64
	texts  []string
	err    error
	gate   chan struct{} // when set, sends block until it is closed
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return f.err
}

func (f *fakeSender) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

func TestInbox(t *testing.T) {
	ctx := context.Background()

	t.Run("Drain returns oldest first and empties", func(t *testing.T) {
		in := notify.NewInbox(10)
		in.Success(ctx, notify.Notification{Message: "one"})
		in.Failure(ctx, notify.Notification{Message: "two"})

		got := in.Drain()
		assert.Len(t, got, 2)
		assert.Equal(t, "one", got[0].Message)
		assert.Equal(t, "two", got[1].Message)
		assert.Equal(t, 0, in.Len())
		assert.Empty(t, in.Drain())
	})

	t.Run("Capacity drops oldest", func(t *testing.T) {
		in := notify.NewInbox(2)
		for _, m := range []string{"a", "b", "c"} {
			in.Success(ctx, notify.Notification{Message: m})
		}
		got := in.Drain()
		assert.Equal(t, []string{"b", "c"}, []string{got[0].Message, got[1].Message})
	})
}

func TestTelegram(t *testing.T) {
	ctx := context.Background()

	t.Run("Failures only by default", func(t *testing.T) {
		s := &fakeSender{}
		n := notify.NewTelegram(s, 42, false, log.NewNop())
		n.Success(ctx, notify.Notification{Module: "banks", Action: "create", Message: "Record created"})
		n.Failure(ctx, notify.Notification{Module: "banks", Action: "create", Message: "name is required"})

		require.Eventually(t, func() bool { return len(s.sent()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Contains(t, s.sent()[0], "name is required")
		s.mu.Lock()
		assert.Equal(t, int64(42), s.chatID)
		s.mu.Unlock()
	})

	t.Run("Send errors are swallowed", func(t *testing.T) {
		s := &fakeSender{err: errors.New("telegram down")}
		n := notify.NewTelegram(s, 1, true, log.NewNop())
		assert.NotPanics(t, func() {
			n.Success(ctx, notify.Notification{Message: "ok"})
		})
		require.Eventually(t, func() bool { return len(s.sent()) == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Slow Telegram does not hold the caller", func(t *testing.T) {
		s := &fakeSender{gate: make(chan struct{})}
		n := notify.NewTelegram(s, 1, false, log.NewNop())

		done := make(chan struct{})
		go func() {
			for i := 0; i < notify.TelegramInFlight+3; i++ {
				n.Failure(ctx, notify.Notification{Message: "boom"})
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Failure blocked on a stuck sender")
		}

		close(s.gate)
		require.Eventually(t, func() bool { return len(s.sent()) == notify.TelegramInFlight }, time.Second, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		assert.Len(t, s.sent(), notify.TelegramInFlight, "overflow is dropped")
	})
}

func TestMulti(t *testing.T) {
	a, b := notify.NewInbox(5), notify.NewInbox(5)
	m := notify.Multi(a, nil, b)
	m.Failure(context.Background(), notify.Notification{Message: "x"})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}
