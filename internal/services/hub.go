package services

import (
	"sync"
)

// Subscriber receives broadcast notification lines. Send returning an error
// marks the subscriber dead and removes it from the hub.
type Subscriber interface {
	Send(message string) error
}

// Hub fans notification lines out to every connected subscriber. Delivery is
// best-effort per subscriber: one failing connection never blocks the others,
// and there is no replay for late joiners.
type Hub struct {
	mu          sync.Mutex
	subscribers map[Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[Subscriber]struct{}),
	}
}

func (h *Hub) Register(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[s] = struct{}{}
}

func (h *Hub) Unregister(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, s)
}

// Broadcast delivers message to every current subscriber in turn. Subscribers
// whose Send fails are dropped from the set.
func (h *Hub) Broadcast(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subscribers {
		if err := s.Send(message); err != nil {
			delete(h.subscribers, s)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
