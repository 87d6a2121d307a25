package store

import "context"

// Listener receives the full snapshot of a store after each mutation.
type Listener[T any] func(ctx context.Context, snapshot T)

// broadcaster also counts notifications; the count serves as the revision
// of the owning store.
type broadcaster[T any] struct {
	listeners []Listener[T]
	revision  uint64
}

func (b *broadcaster[T]) add(l Listener[T]) {
	b.listeners = append(b.listeners, l)
}

func (b *broadcaster[T]) notify(ctx context.Context, snapshot T) {
	b.revision++
	for _, l := range b.listeners {
		l(ctx, snapshot)
	}
}
