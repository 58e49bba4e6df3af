package websocket

import (
	"context"

	"crossword-collab-be/internal/pkg/logger"
	"crossword-collab-be/pkg/crossword"
	"crossword-collab-be/pkg/presence"

	"github.com/google/uuid"
)

type joinRequest struct {
	client *Client
	msg    JoinSessionMessage
}

type relayRequest struct {
	client *Client
	msg    CellUpdateMessage
}

type progressPush struct {
	sessionId     uuid.UUID
	grid          crossword.Grid
	excludeUserId uuid.UUID
}

// Hub owns the connection registry and serializes every mutation through its
// run loop, giving the relay the single-threaded semantics the protocol
// assumes. Fan-out itself is best-effort and non-blocking.
type Hub struct {
	registry *Registry

	join       chan joinRequest
	relay      chan relayRequest
	unregister chan *Client
	push       chan progressPush

	presence *presence.Store
	logger   logger.ILogger
}

func NewHub(presenceStore *presence.Store, log logger.ILogger) *Hub {
	return &Hub{
		registry:   NewRegistry(),
		join:       make(chan joinRequest),
		relay:      make(chan relayRequest),
		unregister: make(chan *Client),
		push:       make(chan progressPush, 64),
		presence:   presenceStore,
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case req := <-h.join:
			h.handleJoin(req)
		case req := <-h.relay:
			h.handleRelay(req)
		case client := <-h.unregister:
			h.handleClose(client)
		case p := <-h.push:
			h.handlePush(p)
		}
	}
}

// handleJoin transitions a connection from unjoined to joined. Re-joining an
// already joined connection is a no-op so a physical join broadcasts
// user_joined at most once. No membership check happens here: the REST layer
// already authorized the caller for the session.
func (h *Hub) handleJoin(req joinRequest) {
	client := req.client
	if client.Joined {
		return
	}

	client.SessionId = req.msg.SessionId
	client.Joined = true
	h.registry.Register(client.SessionId, client)

	h.logger.Info("Hub", "Client joined session", map[string]interface{}{
		"session_id": client.SessionId,
		"user_id":    client.UserId,
		"clients":    h.registry.Count(client.SessionId),
	})

	if _, err := h.registry.Broadcast(client.SessionId, UserJoinedMessage{Type: TypeUserJoined, UserId: client.UserId}, client); err != nil {
		h.logger.Warn("Hub", "user_joined broadcast failed", map[string]interface{}{"error": err})
	}

	if err := h.presence.Join(context.Background(), client.SessionId, client.UserId); err != nil {
		h.logger.Warn("Hub", "Presence join failed", map[string]interface{}{"error": err})
	}
}

// handleRelay rebroadcasts a transient cell edit to the sender's co-present
// participants, stamping the sender's user id. Nothing is persisted here.
func (h *Hub) handleRelay(req relayRequest) {
	client := req.client
	if !client.Joined {
		// Any non-join message before joined is ignored, not an error.
		return
	}

	out := CellUpdateMessage{
		Type:   TypeCellUpdate,
		Row:    req.msg.Row,
		Col:    req.msg.Col,
		Value:  req.msg.Value,
		UserId: client.UserId,
	}
	if _, err := h.registry.Broadcast(client.SessionId, out, client); err != nil {
		h.logger.Warn("Hub", "cell_update broadcast failed", map[string]interface{}{"error": err})
	}
}

func (h *Hub) handleClose(client *Client) {
	close(client.Send)
	if !client.Joined {
		return
	}

	h.registry.Unregister(client.SessionId, client)
	client.Joined = false

	h.logger.Info("Hub", "Client left session", map[string]interface{}{
		"session_id": client.SessionId,
		"user_id":    client.UserId,
		"clients":    h.registry.Count(client.SessionId),
	})

	if _, err := h.registry.Broadcast(client.SessionId, UserLeftMessage{Type: TypeUserLeft, UserId: client.UserId}, nil); err != nil {
		h.logger.Warn("Hub", "user_left broadcast failed", map[string]interface{}{"error": err})
	}

	if err := h.presence.Leave(context.Background(), client.SessionId, client.UserId); err != nil {
		h.logger.Warn("Hub", "Presence leave failed", map[string]interface{}{"error": err})
	}
}

func (h *Hub) handlePush(p progressPush) {
	msg := ProgressUpdateMessage{Type: TypeProgressUpdate, Grid: p.grid}
	if _, err := h.registry.BroadcastExceptUser(p.sessionId, msg, p.excludeUserId); err != nil {
		h.logger.Warn("Hub", "progress_update broadcast failed", map[string]interface{}{"error": err})
	}
}

// BroadcastProgress pushes the authoritative grid to a session's live
// connections, excluding the saving user's own sockets. Safe to call from any
// goroutine; the actual fan-out happens on the run loop.
func (h *Hub) BroadcastProgress(sessionId uuid.UUID, grid crossword.Grid, excludeUserId uuid.UUID) {
	select {
	case h.push <- progressPush{sessionId: sessionId, grid: grid, excludeUserId: excludeUserId}:
	default:
		h.logger.Warn("Hub", "progress push queue full, dropping", map[string]interface{}{"session_id": sessionId})
	}
}

// dropped records a malformed inbound frame; the connection stays alive.
func (h *Hub) dropped(client *Client, err error) {
	h.logger.Warn("Hub", "Malformed message dropped", map[string]interface{}{
		"user_id": client.UserId,
		"error":   err.Error(),
	})
}
