package services

import "sync"

// Notifier fans out values to subscribers.
// Subscribers are called synchronously, outside the notifier's lock, in
// registration order.
type Notifier[T any] struct {
	mu    sync.Mutex
	next  int
	order []int
	subs  map[int]func(T)
}

// NewNotifier creates an empty notifier.
func NewNotifier[T any]() *Notifier[T] {
	return &Notifier[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifier[T]) Subscribe(fn func(T)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn
	n.order = append(n.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			for i, v := range n.order {
				if v == id {
					n.order = append(n.order[:i], n.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers v to every current subscriber.
func (n *Notifier[T]) Publish(v T) {
	n.mu.Lock()
	fns := make([]func(T), 0, len(n.order))
	for _, id := range n.order {
		fns = append(fns, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Len returns the number of subscribers.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
