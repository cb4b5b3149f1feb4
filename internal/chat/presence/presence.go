// Package presence tracks which users currently hold an open message
// subscription in this process. The registry is a latency optimization,
// not a source of truth: it is never persisted and empties on restart.
// A multi-instance deployment needs sticky routing or a bus relay
// behind the same Register/Lookup/Unregister surface.
package presence

import (
	"sync"

	"socialfeed/internal/dbmongo"
)

// Stream is an open outbound delivery handle for one subscriber. Send
// must not block; a stalled subscriber returns an error instead of
// holding up the sender's request path.
type Stream interface {
	Send(msg *dbmongo.Message) error
}

type Registry struct {
	mu      sync.RWMutex
	streams map[string]Stream
}

func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[string]Stream),
	}
}

// Register stores or replaces the stream for userID. A reconnecting
// client simply overwrites its previous handle.
func (r *Registry) Register(userID string, stream Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams[userID] = stream
}

// Unregister removes the entry only if it still holds the caller's own
// stream, so a late unregister from a dead subscription cannot clobber
// a newer registration for the same user.
func (r *Registry) Unregister(userID string, stream Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.streams[userID]; ok && current == stream {
		delete(r.streams, userID)
	}
}

func (r *Registry) Lookup(userID string) (Stream, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stream, ok := r.streams[userID]
	return stream, ok
}
