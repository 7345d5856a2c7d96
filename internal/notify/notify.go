// Package notify provides a typed observer list.
//
// The config store publishes every new state through a Notifier; the hotkey
// registrar and presentation layers subscribe to it. Delivery is synchronous,
// in subscription order, and happens outside the notifier's lock so observers
// may subscribe or unsubscribe from within a callback.
package notify

import (
	"sort"
	"sync"
)

// Observer is called with every published value.
type Observer[T any] func(value T)

// Subscription represents an active observer subscription.
type Subscription[T any] struct {
	id       uint64
	notifier *Notifier[T]
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages subscriptions for values of type T.
type Notifier[T any] struct {
	mu        sync.RWMutex
	observers map[uint64]Observer[T]
	nextID    uint64
}

// New creates a new Notifier.
func New[T any]() *Notifier[T] {
	return &Notifier[T]{
		observers: make(map[uint64]Observer[T]),
	}
}

// Subscribe registers an observer.
func (n *Notifier[T]) Subscribe(observer Observer[T]) *Subscription[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription[T]{id: id, notifier: n}
}

// Notify delivers value to every observer in subscription order.
func (n *Notifier[T]) Notify(value T) {
	n.mu.RLock()
	ids := make([]uint64, 0, len(n.observers))
	for id := range n.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	observers := make([]Observer[T], 0, len(ids))
	for _, id := range ids {
		observers = append(observers, n.observers[id])
	}
	n.mu.RUnlock()

	// Call observers outside the lock
	for _, obs := range observers {
		obs(value)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers)
}

func (n *Notifier[T]) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}
