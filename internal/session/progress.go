package session

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Event is a progress update published while a session's graph is built.
type Event struct {
	Type     string `json:"type"` // "progress" | "complete" | "error"
	Stage    string `json:"stage,omitempty"`
	Percent  int    `json:"percent"`
	Detail   string `json:"detail,omitempty"`
	Message  string `json:"message,omitempty"`
	GraphURL string `json:"graph_url,omitempty"`
}

// Hub fans progress events out to websocket subscribers per session. The
// most recent event per session is retained so late subscribers
// immediately learn the current state, including terminal ones.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
	last *lru.Cache[string, Event]
}

// NewHub creates a progress hub.
func NewHub() (*Hub, error) {
	last, err := lru.New[string, Event](1024)
	if err != nil {
		return nil, err
	}
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
		last: last,
	}, nil
}

// Publish delivers the event to all current subscribers of the session.
// Slow subscribers are skipped rather than blocking the pipeline.
func (h *Hub) Publish(sessionID string, evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last.Add(sessionID, evt)
	for ch := range h.subs[sessionID] {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Subscribe registers a listener for the session's events. The returned
// cancel function must be called to release the subscription. If the
// session already has a last event, it is queued immediately.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	ch := make(chan Event, 32)

	h.mu.Lock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[chan Event]struct{})
	}
	h.subs[sessionID][ch] = struct{}{}
	if evt, ok := h.last.Get(sessionID); ok {
		ch <- evt
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[sessionID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, sessionID)
			}
		}
	}
	return ch, cancel
}
