// Package notify carries the user-facing outcome of a mutation
// ("record created", "name is required", ...) to whoever is listening.
package notify

import (
	"context"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one toast-style message.
type Notification struct {
	Level   Level     `json:"level"`
	Module  string    `json:"module"`
	Action  string    `json:"action"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier receives mutation outcomes. Implementations must not block for long;
// they are called on the mutation's goroutine.
type Notifier interface {
	Success(ctx context.Context, n Notification)
	Failure(ctx context.Context, n Notification)
}

type multi []Notifier

// Multi fans a notification out to every non-nil notifier, in order.
func Multi(notifiers ...Notifier) Notifier {
	m := make(multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multi) Success(ctx context.Context, n Notification) {
	for _, x := range m {
		x.Success(ctx, n)
	}
}

func (m multi) Failure(ctx context.Context, n Notification) {
	for _, x := range m {
		x.Failure(ctx, n)
	}
}

type nop struct{}

// Nop drops everything.
func Nop() Notifier { return nop{} }

func (nop) Success(context.Context, Notification) {}
func (nop) Failure(context.Context, Notification) {}
