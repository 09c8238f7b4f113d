// Package signal delivers one-shot notifications to the rest of the application.
package signal

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// EventWindowOpen is sent once for every opened window; Value is the window key.
const EventWindowOpen = "window-open"

// Task is a single notification.
type Task struct {
	ID    string    `yaml:"id"    json:"id"`
	Type  string    `yaml:"type"  json:"type"`
	Owner string    `yaml:"owner" json:"owner"`
	Value any       `yaml:"value" json:"value"`
	At    time.Time `yaml:"at"    json:"at"`
}

// Sink receives notifications. Ignite blocks until the task is fully handled.
type Sink interface {
	Ignite(ctx context.Context, task Task) error
}

// Handler processes one task.
type Handler func(ctx context.Context, task Task) error

// Bus dispatches tasks to handlers subscribed by event type.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      zerolog.Logger
}

// NewBus creates an empty bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers h for tasks of the given type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Ignite stamps the task with an ID and time if missing and runs every handler
// subscribed to its type in subscription order. Handler errors are joined.
// A cancelled ctx fails the task even when nobody is subscribed.
func (b *Bus) Ignite(ctx context.Context, task Task) error {
	if task.ID == "" {
		task.ID = newID()
	}
	if task.At.IsZero() {
		task.At = time.Now()
	}

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[task.Type]...)
	b.mu.RUnlock()

	b.log.Debug().
		Str("task", task.ID).
		Str("type", task.Type).
		Str("owner", task.Owner).
		Int("handlers", len(handlers)).
		Msg("ignite")

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("task %s: %w", task.ID, err)
	}

	var errs []error
	for i, h := range handlers {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("task %s: %w", task.ID, err)
			}
		}
		if err := h(ctx, task); err != nil {
			b.log.Error().Err(err).Str("task", task.ID).Str("type", task.Type).Msg("handler failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard is a Sink that accepts every task.
type Discard struct{}

// Ignite implements Sink.
func (Discard) Ignite(ctx context.Context, _ Task) error {
	return ctx.Err()
}

func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
