// Package bus implements the notification bus that fans engine state changes
// out to interested subsystems (dashboard widgets, status strip, tests).
//
// Fan-out is synchronous and per-listener isolated: a panicking listener is
// logged and skipped, and never prevents the remaining listeners from
// running.
package bus

import (
	"sync"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

// Listener receives every published event. Payload types are documented on
// the event constants in the models package.
type Listener func(event models.Event, payload any)

// Subscription identifies a registered listener so it can be removed later.
type Subscription struct {
	id int64
}

// Bus is a synchronous publish/subscribe hub. The zero value is not usable;
// construct with New.
type Bus struct {
	logger *logger.Logger

	mu        sync.RWMutex
	nextID    int64
	listeners map[int64]Listener
	order     []int64
}

// New constructs an empty Bus.
func New(log *logger.Logger) *Bus {
	return &Bus{
		logger:    log,
		listeners: make(map[int64]Listener),
	}
}

// Subscribe registers fn and returns a handle for Unsubscribe. Listeners are
// invoked in subscription order.
func (b *Bus) Subscribe(fn Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[id] = fn
	b.order = append(b.order, id)

	return &Subscription{id: id}
}

// Unsubscribe removes a previously registered listener. Unknown or already
// removed subscriptions are a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[sub.id]; !ok {
		return
	}
	delete(b.listeners, sub.id)
	for i, id := range b.order {
		if id == sub.id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish delivers the event to every listener synchronously, in
// subscription order. A panic inside one listener is recovered and logged so
// the remaining listeners still run.
func (b *Bus) Publish(event models.Event, payload any) {
	b.mu.RLock()
	fns := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		if fn, ok := b.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		b.deliver(fn, event, payload)
	}
}

func (b *Bus) deliver(fn Listener, event models.Event, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn().
				Str("event", string(event)).
				Any("panic", r).
				Msg("bus listener panicked, skipping")
		}
	}()

	fn(event, payload)
}
