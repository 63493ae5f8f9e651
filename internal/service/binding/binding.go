package binding

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

// Detacher removes a connection from a room's broadcast group. The
// websocket hub satisfies it.
type Detacher interface {
	Detach(roomID uuid.UUID, conn usecase_game.Conn)
}

type key struct {
	roomID uuid.UUID
	userID string
}

// Binding maps each (room, user) pair to its single live connection.
// Binding a key that already holds a different live connection evicts
// the old one: detached from the group and force-closed, so a
// duplicate tab or a zombie session cannot linger as a ghost member.
type Binding struct {
	mu     sync.Mutex
	conns  map[key]usecase_game.Conn
	group  Detacher
	logger *slog.Logger
}

func New(group Detacher) *Binding {
	return &Binding{
		conns:  make(map[key]usecase_game.Conn),
		group:  group,
		logger: slog.Default(),
	}
}

func (b *Binding) Bind(roomID uuid.UUID, userID string, conn usecase_game.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := key{roomID: roomID, userID: userID}
	if cur, ok := b.conns[k]; ok && cur != conn {
		b.group.Detach(roomID, cur)
		cur.Close()
		b.logger.Info("evicted stale connection", "user_id", userID, "room_id", roomID)
	}
	b.conns[k] = conn
}

// Unbind removes the binding only when it still points at conn. A
// stale disconnect for a superseded connection must not erase the
// binding a fast reconnect just created.
func (b *Binding) Unbind(roomID uuid.UUID, userID string, conn usecase_game.Conn) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := key{roomID: roomID, userID: userID}
	if cur, ok := b.conns[k]; ok && cur == conn {
		delete(b.conns, k)
		return true
	}
	return false
}

func (b *Binding) IsCurrent(roomID uuid.UUID, userID string, conn usecase_game.Conn) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.conns[key{roomID: roomID, userID: userID}]
	return ok && cur == conn
}

func (b *Binding) Current(roomID uuid.UUID, userID string) usecase_game.Conn {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.conns[key{roomID: roomID, userID: userID}]
}
