package session

import "sync"

// Change describes one mutated store key. Subscribers get the key only, not
// a delta: the contract is "re-read the store and repaint", which keeps every
// subscriber idempotent regardless of delivery order.
type Change struct {
	Key string
}

// Handler receives store change notifications.
type Handler func(Change)

// Notifier fans a store change out to every subscribed view. It replaces the
// full-page reload the original design used as its synchronization
// primitive: views subscribe once and re-render from the store on demand.
type Notifier struct {
	mu       sync.Mutex
	next     int
	handlers map[int]Handler
}

func NewNotifier() *Notifier {
	return &Notifier{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns a function that removes it again.
func (n *Notifier) Subscribe(h Handler) (unsubscribe func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.handlers[id] = h
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.handlers, id)
		n.mu.Unlock()
	}
}

// Broadcast delivers c to every handler. Handlers run outside the lock so a
// handler may subscribe or unsubscribe without deadlocking.
func (n *Notifier) Broadcast(c Change) {
	n.mu.Lock()
	hs := make([]Handler, 0, len(n.handlers))
	for _, h := range n.handlers {
		hs = append(hs, h)
	}
	n.mu.Unlock()

	for _, h := range hs {
		h(c)
	}
}
