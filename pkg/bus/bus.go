// Package bus provides a small synchronous publish/subscribe channel for
// in-process events. A Bus instance is injected into the components that need
// it; there is no package-level shared state.
package bus

import (
	"sync"

	"abohawa-api/pkg/log"
)

// Subscription identifies a registered callback. Unsubscribing is done with
// the handle returned by Subscribe, not by comparing callbacks.
type Subscription[T any] struct {
	callback func(T)
}

// Bus fans events out synchronously to every subscriber registered at the
// instant of publish, in subscription order. There is no queuing: subscribers
// registered after a publish never see that event.
type Bus[T any] struct {
	mutex       sync.Mutex
	subscribers []*Subscription[T]
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe appends the callback to the registry and returns its handle.
func (b *Bus[T]) Subscribe(callback func(T)) *Subscription[T] {
	sub := &Subscription[T]{callback: callback}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.subscribers = append(b.subscribers, sub)
	return sub
}

// Unsubscribe removes the subscription. Unknown handles are a no-op.
// Safe to call from inside a callback during fan-out.
func (b *Bus[T]) Unsubscribe(sub *Subscription[T]) {
	if sub == nil {
		return
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every currently registered subscriber.
// Fan-out iterates a snapshot of the registry, so callbacks may subscribe or
// unsubscribe mid-notification. A panicking subscriber does not prevent
// delivery to the rest.
func (b *Bus[T]) Publish(event T) {
	b.mutex.Lock()
	snapshot := make([]*Subscription[T], len(b.subscribers))
	copy(snapshot, b.subscribers)
	b.mutex.Unlock()

	for _, sub := range snapshot {
		b.deliver(sub, event)
	}
}

// SubscriberCount returns the number of currently registered subscribers.
func (b *Bus[T]) SubscriberCount() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.subscribers)
}

func (b *Bus[T]) deliver(sub *Subscription[T], event T) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("event subscriber panicked: %v", r)
		}
	}()
	sub.callback(event)
}
