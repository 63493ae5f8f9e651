package ws_game

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
	"github.com/stretchr/testify/assert"
)

type recordingConn struct {
	mu     sync.Mutex
	events []usecase_game.Event
}

func (c *recordingConn) Emit(event usecase_game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *recordingConn) Close() {}

func (c *recordingConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestHubBroadcast(t *testing.T) {
	h := NewHub()
	roomA, roomB := uuid.New(), uuid.New()

	a1, a2, b1 := &recordingConn{}, &recordingConn{}, &recordingConn{}
	h.Attach(roomA, a1)
	h.Attach(roomA, a2)
	h.Attach(roomB, b1)

	h.Broadcast(roomA, usecase_game.Event{Type: usecase_game.EventRoomData})

	assert.Equal(t, 1, a1.count())
	assert.Equal(t, 1, a2.count())
	assert.Zero(t, b1.count(), "other rooms must not hear the broadcast")
}

func TestHubDetach(t *testing.T) {
	h := NewHub()
	roomID := uuid.New()

	conn := &recordingConn{}
	h.Attach(roomID, conn)
	h.Detach(roomID, conn)

	h.Broadcast(roomID, usecase_game.Event{Type: usecase_game.EventRoomData})
	assert.Zero(t, conn.count())

	// Detaching an unknown connection is a no-op.
	h.Detach(uuid.New(), conn)
}
