package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memeparty/server/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

const defaultMaxPlayers = 8

//go:generate mockery --name=RoomStore --output=./mocks/room/store --filename=store.go
type RoomStore interface {
	Create(room model.Room) (*model.Room, error)
	ByID(id uuid.UUID) *model.Room
	ByCode(code string) *model.Room
}

type Usecase struct {
	store RoomStore
}

func New(store RoomStore) *Usecase {
	return &Usecase{store: store}
}

// Create books a fresh room with the given creator as host.
// Room codes are random, so a collision with a live room is possible;
// retry with a new code a bounded number of times instead of looping.
func (u *Usecase) Create(ctx context.Context, hostUserID string, maxPlayers int) (*model.Room, error) {
	if hostUserID == "" {
		return nil, ErrInvalidArgument
	}
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}

	var retries = 3
	for retries > 0 {
		room := model.Room{
			ID:         uuid.New(),
			Code:       u.buildRoomCode(),
			HostUserID: hostUserID,
			MaxPlayers: maxPlayers,
			Players:    []string{hostUserID},
			Status:     model.StatusWaiting,
			Phase:      model.PhaseWaiting,
			CreatedAt:  time.Now(),
		}
		created, err := u.store.Create(room)
		if err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			return nil, errors.Join(ErrInternal, err)
		}
		return created, nil
	}
	return nil, ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() string {
	const codeLen = 6
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(chars[rand.Intn(len(chars))])
	}

	return builder.String()
}

func (u *Usecase) ByID(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	room := u.store.ByID(roomID)
	if room == nil {
		return nil, ErrResourceNotFound
	}
	return room, nil
}

func (u *Usecase) ByCode(ctx context.Context, code string) (*model.Room, error) {
	room := u.store.ByCode(code)
	if room == nil {
		return nil, ErrResourceNotFound
	}
	return room, nil
}
