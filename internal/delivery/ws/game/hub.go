package ws_game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

// Hub keeps the set of live connections attached to each room and
// fans room-wide events out to them.
type Hub struct {
	mu sync.RWMutex

	rooms map[uuid.UUID]map[usecase_game.Conn]bool

	logger *slog.Logger
}

func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[uuid.UUID]map[usecase_game.Conn]bool),
		logger: slog.Default(),
	}
}

func (h *Hub) Attach(roomID uuid.UUID, conn usecase_game.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[usecase_game.Conn]bool)
	}
	h.rooms[roomID][conn] = true

	h.logger.Info("connection attached", "room_id", roomID)
}

func (h *Hub) Detach(roomID uuid.UUID, conn usecase_game.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[roomID]; ok {
		delete(room, conn)
		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) Broadcast(roomID uuid.UUID, event usecase_game.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.rooms[roomID] {
		conn.Emit(event)
	}
}
