package websocket

import (
	"encoding/json"
	"testing"

	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// The handlers are driven directly instead of through Run: the run loop only
// serializes them, it adds no behavior of its own.
func newTestHub() *Hub {
	return NewHub(nil, noopLogger{})
}

func decodeOne[T any](t *testing.T, c *Client) T {
	t.Helper()
	frames := drain(c)
	require.Len(t, frames, 1)
	var msg T
	require.NoError(t, json.Unmarshal(frames[0], &msg))
	return msg
}

func TestJoinRegistersAndNotifiesPeers(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()

	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(peer)

	joiner := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: joiner, msg: JoinSessionMessage{SessionId: sessionId}})

	assert.True(t, joiner.Joined)
	assert.Equal(t, sessionId, joiner.SessionId)
	assert.Equal(t, 2, h.registry.Count(sessionId))

	got := decodeOne[UserJoinedMessage](t, peer)
	assert.Equal(t, TypeUserJoined, got.Type)
	assert.Equal(t, joiner.UserId, got.UserId)

	assert.Empty(t, drain(joiner), "the joiner does not hear its own arrival")
}

func TestJoinIsIdempotent(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()

	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(peer)

	joiner := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: joiner, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(peer)

	// A duplicate join frame on the same connection changes nothing.
	h.handleJoin(joinRequest{client: joiner, msg: JoinSessionMessage{SessionId: sessionId}})

	assert.Equal(t, 2, h.registry.Count(sessionId))
	assert.Empty(t, drain(peer), "no second user_joined for the same connection")
}

func TestRelayStampsSenderAndExcludesThem(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()

	sender := newTestClient(uuid.New())
	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: sender, msg: JoinSessionMessage{SessionId: sessionId}})
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(sender)
	drain(peer)

	h.handleRelay(relayRequest{client: sender, msg: CellUpdateMessage{Row: 3, Col: 4, Value: "Q"}})

	got := decodeOne[CellUpdateMessage](t, peer)
	assert.Equal(t, TypeCellUpdate, got.Type)
	assert.Equal(t, 3, got.Row)
	assert.Equal(t, 4, got.Col)
	assert.Equal(t, "Q", got.Value)
	assert.Equal(t, sender.UserId, got.UserId, "server stamps the sender identity")

	assert.Empty(t, drain(sender))
}

func TestRelayBeforeJoinIsIgnored(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()

	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(peer)

	stranger := newTestClient(uuid.New())
	h.handleRelay(relayRequest{client: stranger, msg: CellUpdateMessage{Row: 0, Col: 0, Value: "X"}})

	assert.Empty(t, drain(peer))
}

func TestCloseUnregistersAndNotifies(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()

	leaver := newTestClient(uuid.New())
	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: leaver, msg: JoinSessionMessage{SessionId: sessionId}})
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(leaver)
	drain(peer)

	h.handleClose(leaver)

	assert.Equal(t, 1, h.registry.Count(sessionId))
	assert.False(t, h.registry.Contains(sessionId, leaver))

	got := decodeOne[UserLeftMessage](t, peer)
	assert.Equal(t, TypeUserLeft, got.Type)
	assert.Equal(t, leaver.UserId, got.UserId)
}

func TestCloseBeforeJoinOnlyClosesChannel(t *testing.T) {
	h := newTestHub()

	c := newTestClient(uuid.New())
	h.handleClose(c)

	_, open := <-c.Send
	assert.False(t, open)
}

func TestProgressPushSkipsSavingUser(t *testing.T) {
	h := newTestHub()
	sessionId := uuid.New()
	saverId := uuid.New()

	saver := newTestClient(saverId)
	peer := newTestClient(uuid.New())
	h.handleJoin(joinRequest{client: saver, msg: JoinSessionMessage{SessionId: sessionId}})
	h.handleJoin(joinRequest{client: peer, msg: JoinSessionMessage{SessionId: sessionId}})
	drain(saver)
	drain(peer)

	grid := crossword.Grid{{"A", ""}, {"", "B"}}
	h.handlePush(progressPush{sessionId: sessionId, grid: grid, excludeUserId: saverId})

	got := decodeOne[ProgressUpdateMessage](t, peer)
	assert.Equal(t, TypeProgressUpdate, got.Type)
	assert.Equal(t, grid, got.Grid)

	assert.Empty(t, drain(saver), "the saver already holds this grid")
}
