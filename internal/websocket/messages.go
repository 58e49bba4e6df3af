package websocket

import (
	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

// Wire message types, JSON-encoded over the socket.
const (
	TypeJoinSession    = "join_session"
	TypeCellUpdate     = "cell_update"
	TypeUserJoined     = "user_joined"
	TypeUserLeft       = "user_left"
	TypeProgressUpdate = "progress_update"
)

// Envelope decodes just enough of an inbound frame to dispatch on type.
type Envelope struct {
	Type string `json:"type"`
}

type JoinSessionMessage struct {
	Type      string    `json:"type"`
	SessionId uuid.UUID `json:"sessionId"`
	UserId    uuid.UUID `json:"userId"`
}

// CellUpdateMessage carries one transient cell edit. UserId is empty from the
// client and filled in server-side on rebroadcast.
type CellUpdateMessage struct {
	Type   string    `json:"type"`
	Row    int       `json:"row"`
	Col    int       `json:"col"`
	Value  string    `json:"value"`
	UserId uuid.UUID `json:"userId,omitempty"`
}

type UserJoinedMessage struct {
	Type   string    `json:"type"`
	UserId uuid.UUID `json:"userId"`
}

type UserLeftMessage struct {
	Type   string    `json:"type"`
	UserId uuid.UUID `json:"userId"`
}

// ProgressUpdateMessage is the authoritative full-grid snapshot pushed after
// a durable save, so clients that missed live cell updates reconcile.
type ProgressUpdateMessage struct {
	Type string         `json:"type"`
	Grid crossword.Grid `json:"grid"`
}
