package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Hub fans pipeline events out to SSE subscribers. Publishing never blocks
// a run: a subscriber that falls behind loses events.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish stamps and delivers an event of the given type to every
// subscriber. data becomes the JSON payload; nil means no payload.
func (h *Hub) Publish(typ string, data any) {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	evt := Event{Type: typ, At: time.Now().UTC(), Data: raw}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
