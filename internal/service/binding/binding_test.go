package binding

import (
	"testing"

	"github.com/google/uuid"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	closed bool
}

func (c *fakeConn) Emit(usecase_game.Event) {}
func (c *fakeConn) Close()                  { c.closed = true }

type fakeDetacher struct {
	detached []usecase_game.Conn
}

func (d *fakeDetacher) Detach(_ uuid.UUID, conn usecase_game.Conn) {
	d.detached = append(d.detached, conn)
}

func TestBind(t *testing.T) {
	t.Run("evicts a differing live connection", func(t *testing.T) {
		group := &fakeDetacher{}
		b := New(group)
		roomID := uuid.New()

		c1 := &fakeConn{}
		c2 := &fakeConn{}

		b.Bind(roomID, "user-1", c1)
		b.Bind(roomID, "user-1", c2)

		assert.True(t, c1.closed)
		assert.Equal(t, []usecase_game.Conn{c1}, group.detached)
		assert.True(t, b.IsCurrent(roomID, "user-1", c2))
		assert.False(t, b.IsCurrent(roomID, "user-1", c1))
	})

	t.Run("rebinding the same connection is a no-op", func(t *testing.T) {
		group := &fakeDetacher{}
		b := New(group)
		roomID := uuid.New()

		c1 := &fakeConn{}
		b.Bind(roomID, "user-1", c1)
		b.Bind(roomID, "user-1", c1)

		assert.False(t, c1.closed)
		assert.Empty(t, group.detached)
		assert.True(t, b.IsCurrent(roomID, "user-1", c1))
	})

	t.Run("keys are scoped per room", func(t *testing.T) {
		b := New(&fakeDetacher{})
		roomA, roomB := uuid.New(), uuid.New()

		c1 := &fakeConn{}
		c2 := &fakeConn{}

		b.Bind(roomA, "user-1", c1)
		b.Bind(roomB, "user-1", c2)

		assert.False(t, c1.closed)
		assert.True(t, b.IsCurrent(roomA, "user-1", c1))
		assert.True(t, b.IsCurrent(roomB, "user-1", c2))
	})
}

func TestUnbind(t *testing.T) {
	t.Run("removes only the current connection", func(t *testing.T) {
		b := New(&fakeDetacher{})
		roomID := uuid.New()

		c1 := &fakeConn{}
		c2 := &fakeConn{}

		b.Bind(roomID, "user-1", c1)
		b.Bind(roomID, "user-1", c2)

		// A stale disconnect for c1 must not erase c2's binding.
		assert.False(t, b.Unbind(roomID, "user-1", c1))
		assert.True(t, b.IsCurrent(roomID, "user-1", c2))

		assert.True(t, b.Unbind(roomID, "user-1", c2))
		assert.Nil(t, b.Current(roomID, "user-1"))
	})
}

func TestCurrent(t *testing.T) {
	b := New(&fakeDetacher{})
	roomID := uuid.New()

	assert.Nil(t, b.Current(roomID, "user-1"))

	c1 := &fakeConn{}
	b.Bind(roomID, "user-1", c1)
	assert.Equal(t, usecase_game.Conn(c1), b.Current(roomID, "user-1"))
}
