// Package watch provides a small publish/subscribe primitive for
// broadcasting successive snapshots to any number of observers.
package watch

import (
	"context"
	"sync"
)

// Source fans out published values to all active subscribers. Each
// subscriber has a buffer of one: if it is slow, the pending value is
// replaced by the newest one, so a subscriber always ends up observing
// a state at-least-as-new as the last publish.
type Source[T any] struct {
	mu     sync.Mutex
	subs   map[int]chan T
	nextID int
	last   T
	primed bool
}

func NewSource[T any]() *Source[T] {
	return &Source[T]{subs: make(map[int]chan T)}
}

// Publish delivers v to every subscriber, coalescing with any
// undelivered previous value.
func (s *Source[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = v
	s.primed = true
	for _, ch := range s.subs {
		send(ch, v)
	}
}

// Primed reports whether at least one value has been published.
func (s *Source[T]) Primed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primed
}

// Subscribe registers a new observer. The last published value, if any,
// is delivered immediately. The returned channel is closed when ctx is
// cancelled.
func (s *Source[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if s.primed {
		send(ch, s.last)
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

func send[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		// drop the stale pending value, keep the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
