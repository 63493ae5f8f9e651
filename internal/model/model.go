package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// RoomPhase is the fine-grained round sub-state, distinct from RoomStatus.
type RoomPhase string

const (
	PhaseWaiting       RoomPhase = "waiting"
	PhaseStartRound    RoomPhase = "start_round"
	PhaseRemakeContent RoomPhase = "remake_content"
	PhaseEnded         RoomPhase = "ended"
)

// ContentItem is the per-round media object served to a room.
type ContentItem struct {
	ID       int64
	MediaURL string
	Title    *string
}

type Room struct {
	ID         uuid.UUID
	Code       string
	HostUserID string
	MaxPlayers int

	// Players keeps join order. First entry is the creator.
	Players []string

	Status         RoomStatus
	Phase          RoomPhase
	CurrentContent *ContentItem
	CreatedAt      time.Time
}

func (r *Room) HasPlayer(userID string) bool {
	return slices.Contains(r.Players, userID)
}

// Clone returns a copy that does not share the Players slice.
func (r *Room) Clone() *Room {
	c := *r
	c.Players = slices.Clone(r.Players)
	return &c
}

// RoomPatch carries a partial room update. Nil fields stay unchanged.
// Content is applied only when SetContent is true, so content can be
// cleared as well as replaced.
type RoomPatch struct {
	HostUserID *string
	Players    *[]string
	Status     *RoomStatus
	Phase      *RoomPhase

	SetContent bool
	Content    *ContentItem
}
