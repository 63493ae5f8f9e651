package ws_game

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

const (
	msgJoinRoom      = "joinRoom"
	msgStartGame     = "startGame"
	msgRemakeContent = "remakeContent"
	msgEndGame       = "endGame"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type roomActionPayload struct {
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
}

type Controller struct {
	hub     *Hub
	usecase *usecase_game.Usecase
	logger  *slog.Logger
}

func NewController(hub *Hub, usecase *usecase_game.Usecase) *Controller {
	return &Controller{
		hub:     hub,
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	socket, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(socket)
	go client.writePump()
	c.readLoop(client)
}

func (c *Controller) readLoop(client *Client) {
	defer func() {
		if client.joined {
			c.usecase.Disconnect(context.Background(), client.userID, client.roomID, client)
		}
		c.hub.Detach(client.roomID, client)
		client.Close()
	}()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			client.Emit(usecase_game.Event{
				Type:    usecase_game.EventErrorMsg,
				Payload: usecase_game.ErrorPayload{Message: "malformed message"},
			})
			continue
		}

		c.dispatch(client, msg)
	}
}

func (c *Controller) dispatch(client *Client, msg inboundMessage) {
	var action roomActionPayload
	if err := json.Unmarshal(msg.Payload, &action); err != nil || action.UserID == "" {
		client.Emit(usecase_game.Event{
			Type:    usecase_game.EventErrorMsg,
			Payload: usecase_game.ErrorPayload{Message: "malformed payload"},
		})
		return
	}

	roomID, err := uuid.Parse(action.RoomID)
	if err != nil {
		client.Emit(usecase_game.Event{
			Type:    usecase_game.EventErrorMsg,
			Payload: usecase_game.ErrorPayload{Message: "room not found or join impossible"},
		})
		return
	}

	ctx := context.Background()

	switch msg.Type {
	case msgJoinRoom:
		if err := c.usecase.Join(ctx, action.UserID, roomID, client); err == nil {
			client.userID = action.UserID
			client.roomID = roomID
			client.joined = true
		}
	case msgStartGame:
		_ = c.usecase.StartGame(ctx, action.UserID, roomID, client)
	case msgRemakeContent:
		_ = c.usecase.RemakeContent(ctx, action.UserID, roomID, client)
	case msgEndGame:
		_ = c.usecase.EndGame(ctx, action.UserID, roomID, client)
	default:
		c.logger.Warn("unknown message type", "type", msg.Type)
	}
}
