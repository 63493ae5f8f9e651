package usecase_game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/memeparty/server/internal/model"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
	ErrNotHost      = errors.New("only host may do this")
	ErrNoContent    = errors.New("no content available")
)

// Conn is one live real-time connection. Emit must not block the caller.
type Conn interface {
	Emit(event Event)
	Close()
}

// Group is the per-room broadcast fan-out.
type Group interface {
	Attach(roomID uuid.UUID, conn Conn)
	Detach(roomID uuid.UUID, conn Conn)
	Broadcast(roomID uuid.UUID, event Event)
}

// Binder tracks the single live connection per (room, user) key.
type Binder interface {
	Bind(roomID uuid.UUID, userID string, conn Conn)
	Unbind(roomID uuid.UUID, userID string, conn Conn) bool
	IsCurrent(roomID uuid.UUID, userID string, conn Conn) bool
	Current(roomID uuid.UUID, userID string) Conn
}

type RoomStore interface {
	ByID(id uuid.UUID) *model.Room
	Update(id uuid.UUID, patch model.RoomPatch) *model.Room
	Delete(id uuid.UUID) bool
}

//go:generate mockery --name=ContentProvider --output=./mocks/game/content --filename=content.go
type ContentProvider interface {
	PickRandom(ctx context.Context) (*model.ContentItem, error)
}

// LastRoomCache remembers where a user was last seen, as a reconnect
// hint. Best effort only.
type LastRoomCache interface {
	SetLastRoom(userID string, roomID uuid.UUID) error
}

// Usecase is the room session protocol: it orchestrates the registry,
// the connection binding and the broadcast group for every inbound
// join / disconnect / round event.
type Usecase struct {
	store     RoomStore
	binder    Binder
	group     Group
	content   ContentProvider
	lastRooms LastRoomCache
	logger    *slog.Logger

	// Handlers for one room run to completion one at a time, including
	// across the suspending content fetch. Rooms never share a lock.
	mu        sync.Mutex
	roomLocks map[uuid.UUID]*sync.Mutex
}

func New(
	store RoomStore,
	binder Binder,
	group Group,
	content ContentProvider,
	lastRooms LastRoomCache,
) *Usecase {
	return &Usecase{
		store:     store,
		binder:    binder,
		group:     group,
		content:   content,
		lastRooms: lastRooms,
		logger:    slog.Default(),
		roomLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (u *Usecase) lockRoom(roomID uuid.UUID) func() {
	u.mu.Lock()
	l, ok := u.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		u.roomLocks[roomID] = l
	}
	u.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (u *Usecase) dropRoomLock(roomID uuid.UUID) {
	u.mu.Lock()
	delete(u.roomLocks, roomID)
	u.mu.Unlock()
}

// Join attaches a connection to a room on behalf of a user. A stale
// connection of the same user is evicted first. Rejoins re-sync the
// caller without touching membership; a failed join leaves no binding
// behind.
func (u *Usecase) Join(ctx context.Context, userID string, roomID uuid.UUID, conn Conn) error {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		conn.Emit(errorEvent("room not found or join impossible"))
		return ErrRoomNotFound
	}

	u.binder.Bind(roomID, userID, conn)

	if room.HasPlayer(userID) {
		u.group.Attach(roomID, conn)
		conn.Emit(roomDataEvent(room))
		u.cacheLastRoom(userID, roomID)
		return nil
	}

	if len(room.Players) >= room.MaxPlayers {
		u.binder.Unbind(roomID, userID, conn)
		conn.Emit(errorEvent("room full"))
		return ErrRoomFull
	}

	players := append(append([]string(nil), room.Players...), userID)
	updated := u.store.Update(roomID, model.RoomPatch{Players: &players})
	if updated == nil {
		u.binder.Unbind(roomID, userID, conn)
		conn.Emit(errorEvent("room not found or join impossible"))
		return ErrRoomNotFound
	}

	u.group.Attach(roomID, conn)
	u.group.Broadcast(roomID, roomDataEvent(updated))
	u.cacheLastRoom(userID, roomID)

	u.logger.Info("player joined room", "user_id", userID, "room_id", roomID)
	return nil
}

// Disconnect handles a transport-level connection loss. A disconnect
// from a connection already superseded by a reconnect is a stale ghost
// and is absorbed silently.
func (u *Usecase) Disconnect(ctx context.Context, userID string, roomID uuid.UUID, conn Conn) {
	unlock := u.lockRoom(roomID)
	defer unlock()

	if !u.binder.IsCurrent(roomID, userID, conn) {
		return
	}
	u.binder.Unbind(roomID, userID, conn)
	u.group.Detach(roomID, conn)

	u.removePlayerLocked(userID, roomID)
}

// removePlayerLocked drops the user from the room's membership, running
// host failover or room teardown as needed. Caller holds the room lock.
func (u *Usecase) removePlayerLocked(userID string, roomID uuid.UUID) {
	room := u.store.ByID(roomID)
	if room == nil || !room.HasPlayer(userID) {
		return
	}

	remaining := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		if p != userID {
			remaining = append(remaining, p)
		}
	}

	if room.HostUserID == userID {
		if len(remaining) == 0 {
			u.store.Delete(roomID)
			u.dropRoomLock(roomID)
			u.logger.Info("room deleted, last player left", "room_id", roomID)
			return
		}

		// First remaining player by join order inherits the room.
		newHost := remaining[0]
		updated := u.store.Update(roomID, model.RoomPatch{
			Players:    &remaining,
			HostUserID: &newHost,
		})
		u.group.Broadcast(roomID, hostChangedEvent(newHost))
		u.group.Broadcast(roomID, roomDataEvent(updated))
		u.logger.Info("host migrated", "room_id", roomID, "old_host", userID, "new_host", newHost)
		return
	}

	updated := u.store.Update(roomID, model.RoomPatch{Players: &remaining})
	u.group.Broadcast(roomID, roomDataEvent(updated))
}

// StartGame moves a waiting room into its first round. Only the host
// may start. A duplicate start while already playing re-syncs the
// caller instead of failing.
func (u *Usecase) StartGame(ctx context.Context, userID string, roomID uuid.UUID, conn Conn) error {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		conn.Emit(errorEvent("room not found"))
		return ErrRoomNotFound
	}
	if room.HostUserID != userID {
		conn.Emit(errorEvent("only host may start"))
		return ErrNotHost
	}
	if room.Status != model.StatusWaiting {
		conn.Emit(roomDataEvent(room))
		return nil
	}

	content := room.CurrentContent
	if content == nil {
		item, err := u.content.PickRandom(ctx)
		if err != nil {
			u.logger.Error("content pick failed", "room_id", roomID, "error", err)
			conn.Emit(errorEvent("no content available"))
			return ErrNoContent
		}
		content = item
	}

	playing, startRound := model.StatusPlaying, model.PhaseStartRound
	updated := u.store.Update(roomID, model.RoomPatch{
		Status:     &playing,
		Phase:      &startRound,
		SetContent: true,
		Content:    content,
	})
	u.group.Broadcast(roomID, roomDataEvent(updated))

	u.logger.Info("round started", "room_id", roomID, "content_id", content.ID)
	return nil
}

// RemakeContent swaps the active round's content for a fresh item.
// While the fetch is outstanding the room shows phase remake_content;
// a failed fetch restores the previous round untouched.
func (u *Usecase) RemakeContent(ctx context.Context, userID string, roomID uuid.UUID, conn Conn) error {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		conn.Emit(errorEvent("room not found"))
		return ErrRoomNotFound
	}
	if room.HostUserID != userID {
		conn.Emit(errorEvent("only host may do this"))
		return ErrNotHost
	}
	if room.Status != model.StatusPlaying {
		conn.Emit(roomDataEvent(room))
		return nil
	}

	remake := model.PhaseRemakeContent
	if updated := u.store.Update(roomID, model.RoomPatch{Phase: &remake}); updated != nil {
		u.group.Broadcast(roomID, roomDataEvent(updated))
	}

	startRound := model.PhaseStartRound
	item, err := u.content.PickRandom(ctx)
	if err != nil {
		u.logger.Error("content remake failed", "room_id", roomID, "error", err)
		if updated := u.store.Update(roomID, model.RoomPatch{Phase: &startRound}); updated != nil {
			u.group.Broadcast(roomID, roomDataEvent(updated))
		}
		conn.Emit(errorEvent("no content available"))
		return ErrNoContent
	}

	updated := u.store.Update(roomID, model.RoomPatch{
		Phase:      &startRound,
		SetContent: true,
		Content:    item,
	})
	u.group.Broadcast(roomID, roomDataEvent(updated))
	return nil
}

// EndGame finishes the active game. Host only; any non-playing state
// re-syncs the caller.
func (u *Usecase) EndGame(ctx context.Context, userID string, roomID uuid.UUID, conn Conn) error {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		conn.Emit(errorEvent("room not found"))
		return ErrRoomNotFound
	}
	if room.HostUserID != userID {
		conn.Emit(errorEvent("only host may do this"))
		return ErrNotHost
	}
	if room.Status != model.StatusPlaying {
		conn.Emit(roomDataEvent(room))
		return nil
	}

	finished, ended := model.StatusFinished, model.PhaseEnded
	updated := u.store.Update(roomID, model.RoomPatch{
		Status: &finished,
		Phase:  &ended,
	})
	u.group.Broadcast(roomID, roomDataEvent(updated))

	u.logger.Info("game ended", "room_id", roomID)
	return nil
}

// AddPlayer joins a user without a live connection (the HTTP join
// path). Membership rules match Join; the group still hears about it.
func (u *Usecase) AddPlayer(ctx context.Context, userID string, roomID uuid.UUID) (*model.Room, error) {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.HasPlayer(userID) {
		return room, nil
	}
	if len(room.Players) >= room.MaxPlayers {
		return nil, ErrRoomFull
	}

	players := append(append([]string(nil), room.Players...), userID)
	updated := u.store.Update(roomID, model.RoomPatch{Players: &players})
	if updated == nil {
		return nil, ErrRoomNotFound
	}
	u.group.Broadcast(roomID, roomDataEvent(updated))
	u.cacheLastRoom(userID, roomID)
	return updated, nil
}

// LeavePlayer removes a user deliberately (the HTTP leave path). Any
// live connection of that user is closed; host failover and teardown
// follow the same rules as a disconnect.
func (u *Usecase) LeavePlayer(ctx context.Context, userID string, roomID uuid.UUID) error {
	unlock := u.lockRoom(roomID)
	defer unlock()

	room := u.store.ByID(roomID)
	if room == nil {
		return ErrRoomNotFound
	}

	if conn := u.binder.Current(roomID, userID); conn != nil {
		u.binder.Unbind(roomID, userID, conn)
		u.group.Detach(roomID, conn)
		conn.Close()
	}

	u.removePlayerLocked(userID, roomID)
	return nil
}

func (u *Usecase) cacheLastRoom(userID string, roomID uuid.UUID) {
	if u.lastRooms == nil {
		return
	}
	if err := u.lastRooms.SetLastRoom(userID, roomID); err != nil {
		u.logger.Warn("last-room cache write failed", "user_id", userID, "error", err)
	}
}
