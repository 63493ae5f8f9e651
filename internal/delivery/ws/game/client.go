package ws_game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

const sendBufferSize = 16

// Client is one websocket connection. It implements usecase_game.Conn;
// Emit never blocks the protocol — a client too slow to drain its
// buffer is closed instead.
type Client struct {
	conn *websocket.Conn
	send chan usecase_game.Event

	// Set once the first join succeeds; zero values mean the
	// connection never attached to a room.
	userID string
	roomID uuid.UUID
	joined bool

	done      chan struct{}
	closeOnce sync.Once

	logger *slog.Logger
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan usecase_game.Event, sendBufferSize),
		done:   make(chan struct{}),
		logger: slog.Default(),
	}
}

func (c *Client) Emit(event usecase_game.Event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- event:
	case <-c.done:
	default:
		// Closing the socket makes the read loop exit, which detaches
		// the client from the hub. Detaching here would deadlock: Emit
		// runs under the hub's read lock during a broadcast.
		c.logger.Warn("slow client, dropping connection", "user_id", c.userID)
		c.Close()
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case <-c.done:
			return
		case event := <-c.send:
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
