package notify

import (
	"context"
	"fmt"
	"sync"

	"erp-admin/pkg/log"
	"erp-admin/pkg/telegram"
)

type logNotifier struct {
	l log.Logger
}

// NewLog writes notifications to the service log.
func NewLog(l log.Logger) Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Success(ctx context.Context, x Notification) {
	n.l.Infof(ctx, "notify: %s %s: %s", x.Module, x.Action, x.Message)
}

func (n *logNotifier) Failure(ctx context.Context, x Notification) {
	n.l.Warnf(ctx, "notify: %s %s failed: %s", x.Module, x.Action, x.Message)
}

// Sender is the part of the Telegram bot the notifier needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

var _ Sender = (*telegram.Bot)(nil)

// TelegramInFlight bounds the messages being sent at once. Notifications
// beyond it are dropped and logged.
const TelegramInFlight = 4

type telegramNotifier struct {
	bot       Sender
	chatID    int64
	successes bool
	l         log.Logger
	slots     chan struct{}
}

// NewTelegram posts failures to an operations chat. With successes set,
// successful mutations are posted too. Messages are sent in the background.
func NewTelegram(bot Sender, chatID int64, successes bool, l log.Logger) Notifier {
	return &telegramNotifier{
		bot:       bot,
		chatID:    chatID,
		successes: successes,
		l:         l,
		slots:     make(chan struct{}, TelegramInFlight),
	}
}

func (n *telegramNotifier) Success(ctx context.Context, x Notification) {
	if !n.successes {
		return
	}
	n.send(ctx, fmt.Sprintf("✅ %s %s: %s", x.Module, x.Action, x.Message))
}

func (n *telegramNotifier) Failure(ctx context.Context, x Notification) {
	n.send(ctx, fmt.Sprintf("⚠️ %s %s failed: %s", x.Module, x.Action, x.Message))
}

func (n *telegramNotifier) send(ctx context.Context, text string) {
	select {
	case n.slots <- struct{}{}:
	default:
		n.l.Warnf(ctx, "notify: telegram busy, dropped %q", text)
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() { <-n.slots }()
		if err := n.bot.SendMessage(n.chatID, text); err != nil {
			n.l.Warnf(ctx, "notify: telegram send failed: %v", err)
		}
	}()
}

// Inbox keeps the most recent notifications until the dashboard drains them.
type Inbox struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
}

// NewInbox returns an inbox holding at most capacity notifications; older ones are dropped.
func NewInbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = 50
	}
	return &Inbox{capacity: capacity}
}

func (b *Inbox) Success(_ context.Context, n Notification) { b.push(n) }
func (b *Inbox) Failure(_ context.Context, n Notification) { b.push(n) }

func (b *Inbox) push(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
	if over := len(b.items) - b.capacity; over > 0 {
		b.items = append([]Notification(nil), b.items[over:]...)
	}
}

// Drain returns pending notifications oldest first and empties the inbox.
func (b *Inbox) Drain() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	if out == nil {
		return []Notification{}
	}
	return out
}

// Len returns the number of pending notifications.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
