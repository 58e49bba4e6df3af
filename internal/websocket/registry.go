package websocket

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Registry maps a session id to the set of live clients currently viewing it.
// It is a plain synchronous structure: all mutation happens on the hub's run
// goroutine, so no locking is needed here.
type Registry struct {
	sessions map[uuid.UUID]map[*Client]bool
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]map[*Client]bool),
	}
}

func (r *Registry) Register(sessionId uuid.UUID, client *Client) {
	set, ok := r.sessions[sessionId]
	if !ok {
		set = make(map[*Client]bool)
		r.sessions[sessionId] = set
	}
	set[client] = true
}

// Unregister removes the client; an emptied set is deleted so the registry
// never holds dangling entries.
func (r *Registry) Unregister(sessionId uuid.UUID, client *Client) {
	set, ok := r.sessions[sessionId]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(r.sessions, sessionId)
	}
}

// Contains reports whether the client is registered under the session.
func (r *Registry) Contains(sessionId uuid.UUID, client *Client) bool {
	return r.sessions[sessionId][client]
}

// Count returns the number of live clients on a session.
func (r *Registry) Count(sessionId uuid.UUID) int {
	return len(r.sessions[sessionId])
}

// Broadcast serializes the message once and sends it to every client on the
// session except exclude. Sends are best-effort: a client whose send buffer
// is full is skipped, not retried. Returns the number of clients reached.
func (r *Registry) Broadcast(sessionId uuid.UUID, message interface{}, exclude *Client) (int, error) {
	set, ok := r.sessions[sessionId]
	if !ok {
		return 0, nil
	}

	data, err := json.Marshal(message)
	if err != nil {
		return 0, err
	}

	sent := 0
	for client := range set {
		if client == exclude {
			continue
		}
		select {
		case client.Send <- data:
			sent++
		default:
			// Slow or dead connection; the ping/pong deadline will reap it.
		}
	}
	return sent, nil
}

// BroadcastExceptUser behaves like Broadcast but excludes by user identity,
// for server-initiated pushes that have no originating connection (a REST
// save has no socket to exclude).
func (r *Registry) BroadcastExceptUser(sessionId uuid.UUID, message interface{}, excludeUserId uuid.UUID) (int, error) {
	set, ok := r.sessions[sessionId]
	if !ok {
		return 0, nil
	}

	data, err := json.Marshal(message)
	if err != nil {
		return 0, err
	}

	sent := 0
	for client := range set {
		if client.UserId == excludeUserId {
			continue
		}
		select {
		case client.Send <- data:
			sent++
		default:
		}
	}
	return sent, nil
}
