package storage_room

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/memeparty/server/internal/model"
	usecase_room "github.com/memeparty/server/internal/usecase/room"
)

// Registry is the authoritative in-memory set of live rooms, indexed by
// id and by code. It is an injected instance, not a package singleton.
// All operations are plain map mutations under one lock; none blocks.
type Registry struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*model.Room
	byCode map[string]uuid.UUID
	logger *slog.Logger
}

func New() *Registry {
	return &Registry{
		byID:   make(map[uuid.UUID]*model.Room),
		byCode: make(map[string]uuid.UUID),
		logger: slog.Default(),
	}
}

// Create inserts the room. The code-uniqueness check is atomic with the
// insert, so two concurrent creations cannot both claim one code.
func (r *Registry) Create(room model.Room) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[room.Code]; taken {
		return nil, usecase_room.ErrCodeConflict
	}
	if _, exists := r.byID[room.ID]; exists {
		return nil, usecase_room.ErrCodeConflict
	}

	stored := room.Clone()
	r.byID[room.ID] = stored
	r.byCode[room.Code] = room.ID

	return stored.Clone(), nil
}

func (r *Registry) ByID(id uuid.UUID) *model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[id]
	if !ok {
		return nil
	}
	return room.Clone()
}

func (r *Registry) ByCode(code string) *model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil
	}
	room, ok := r.byID[id]
	if !ok {
		return nil
	}
	return room.Clone()
}

// Update merges the patch into the stored room and returns the new
// snapshot, or nil when the room is absent. A patch that would exceed
// capacity indicates a defect upstream; it is refused, never applied.
func (r *Registry) Update(id uuid.UUID, patch model.RoomPatch) *model.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.byID[id]
	if !ok {
		return nil
	}

	if patch.Players != nil && len(*patch.Players) > room.MaxPlayers {
		r.logger.Error("refusing room update beyond capacity",
			"room_id", id,
			"players", len(*patch.Players),
			"max_players", room.MaxPlayers)
		return room.Clone()
	}

	if patch.HostUserID != nil {
		room.HostUserID = *patch.HostUserID
	}
	if patch.Players != nil {
		room.Players = append([]string(nil), (*patch.Players)...)
	}
	if patch.Status != nil {
		room.Status = *patch.Status
	}
	if patch.Phase != nil {
		room.Phase = *patch.Phase
	}
	if patch.SetContent {
		room.CurrentContent = patch.Content
	}

	return room.Clone()
}

// Delete removes the room and frees its code. Reports whether a room
// was actually removed.
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	delete(r.byCode, room.Code)
	return true
}
