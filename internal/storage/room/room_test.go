package storage_room

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/memeparty/server/internal/model"
	usecase_room "github.com/memeparty/server/internal/usecase/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(code string, host string, maxPlayers int) model.Room {
	return model.Room{
		ID:         uuid.New(),
		Code:       code,
		HostUserID: host,
		MaxPlayers: maxPlayers,
		Players:    []string{host},
		Status:     model.StatusWaiting,
		Phase:      model.PhaseWaiting,
		CreatedAt:  time.Now(),
	}
}

func TestCreate(t *testing.T) {
	t.Run("rejects duplicate code", func(t *testing.T) {
		r := New()

		_, err := r.Create(testRoom("AAA111", "host-1", 4))
		require.NoError(t, err)

		_, err = r.Create(testRoom("AAA111", "host-2", 4))
		assert.ErrorIs(t, err, usecase_room.ErrCodeConflict)
	})

	t.Run("returned snapshot does not alias the stored room", func(t *testing.T) {
		r := New()

		room := testRoom("BBB222", "host-1", 4)
		created, err := r.Create(room)
		require.NoError(t, err)

		created.Players[0] = "tampered"

		stored := r.ByID(room.ID)
		require.NotNil(t, stored)
		assert.Equal(t, []string{"host-1"}, stored.Players)
	})
}

func TestLookup(t *testing.T) {
	r := New()

	room := testRoom("CCC333", "host-1", 4)
	_, err := r.Create(room)
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		got := r.ByID(room.ID)
		require.NotNil(t, got)
		assert.Equal(t, room.Code, got.Code)
	})

	t.Run("by code", func(t *testing.T) {
		got := r.ByCode("CCC333")
		require.NotNil(t, got)
		assert.Equal(t, room.ID, got.ID)
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, r.ByID(uuid.New()))
		assert.Nil(t, r.ByCode("ZZZ999"))
	})
}

func TestUpdate(t *testing.T) {
	t.Run("merges only given fields", func(t *testing.T) {
		r := New()
		room := testRoom("DDD444", "host-1", 4)
		_, err := r.Create(room)
		require.NoError(t, err)

		playing := model.StatusPlaying
		players := []string{"host-1", "guest-1"}
		updated := r.Update(room.ID, model.RoomPatch{
			Status:  &playing,
			Players: &players,
		})

		require.NotNil(t, updated)
		assert.Equal(t, model.StatusPlaying, updated.Status)
		assert.Equal(t, players, updated.Players)
		assert.Equal(t, model.PhaseWaiting, updated.Phase)
		assert.Equal(t, "host-1", updated.HostUserID)
	})

	t.Run("absent room is a no-op", func(t *testing.T) {
		r := New()
		playing := model.StatusPlaying
		assert.Nil(t, r.Update(uuid.New(), model.RoomPatch{Status: &playing}))
	})

	t.Run("refuses players beyond capacity", func(t *testing.T) {
		r := New()
		room := testRoom("EEE555", "host-1", 2)
		_, err := r.Create(room)
		require.NoError(t, err)

		over := []string{"host-1", "guest-1", "guest-2"}
		snapshot := r.Update(room.ID, model.RoomPatch{Players: &over})

		require.NotNil(t, snapshot)
		assert.Equal(t, []string{"host-1"}, snapshot.Players)
	})

	t.Run("content can be set and cleared", func(t *testing.T) {
		r := New()
		room := testRoom("FFF666", "host-1", 4)
		_, err := r.Create(room)
		require.NoError(t, err)

		item := &model.ContentItem{ID: 7, MediaURL: "https://cdn.example/7.mp4"}
		updated := r.Update(room.ID, model.RoomPatch{SetContent: true, Content: item})
		require.NotNil(t, updated)
		require.NotNil(t, updated.CurrentContent)
		assert.Equal(t, int64(7), updated.CurrentContent.ID)

		updated = r.Update(room.ID, model.RoomPatch{SetContent: true, Content: nil})
		require.NotNil(t, updated)
		assert.Nil(t, updated.CurrentContent)
	})
}

func TestDelete(t *testing.T) {
	r := New()
	room := testRoom("GGG777", "host-1", 4)
	_, err := r.Create(room)
	require.NoError(t, err)

	assert.True(t, r.Delete(room.ID))
	assert.False(t, r.Delete(room.ID))
	assert.Nil(t, r.ByID(room.ID))

	// Deleting frees the code for reuse.
	_, err = r.Create(testRoom("GGG777", "host-2", 4))
	assert.NoError(t, err)
}
