package usecase_game

import (
	"github.com/memeparty/server/internal/model"
)

const (
	EventRoomData    = "roomData"
	EventErrorMsg    = "errorMessage"
	EventHostChanged = "hostChanged"
)

// Event is the JSON envelope for everything sent over a room's
// real-time channel.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type PlayerDTO struct {
	UserID string `json:"userId"`
}

type ContentDTO struct {
	ID       int64   `json:"id"`
	MediaURL string  `json:"mediaUrl"`
	Title    *string `json:"title"`
}

type RoomDataPayload struct {
	Players []PlayerDTO      `json:"players"`
	Status  model.RoomStatus `json:"status"`
	Phase   model.RoomPhase  `json:"phase"`
	Content *ContentDTO      `json:"content"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type HostChangedPayload struct {
	HostUserID string `json:"hostUserId"`
}

func roomDataEvent(room *model.Room) Event {
	players := make([]PlayerDTO, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, PlayerDTO{UserID: p})
	}

	var content *ContentDTO
	if room.CurrentContent != nil {
		content = &ContentDTO{
			ID:       room.CurrentContent.ID,
			MediaURL: room.CurrentContent.MediaURL,
			Title:    room.CurrentContent.Title,
		}
	}

	return Event{
		Type: EventRoomData,
		Payload: RoomDataPayload{
			Players: players,
			Status:  room.Status,
			Phase:   room.Phase,
			Content: content,
		},
	}
}

func errorEvent(message string) Event {
	return Event{
		Type:    EventErrorMsg,
		Payload: ErrorPayload{Message: message},
	}
}

func hostChangedEvent(hostUserID string) Event {
	return Event{
		Type:    EventHostChanged,
		Payload: HostChangedPayload{HostUserID: hostUserID},
	}
}
