package http_room

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/memeparty/server/internal/delivery/http/common"
	"github.com/memeparty/server/internal/model"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
	usecase_room "github.com/memeparty/server/internal/usecase/room"
)

// LastRoomReader resolves the reconnect hint written on join.
type LastRoomReader interface {
	LastRoom(userID string) (uuid.UUID, error)
}

type Controller struct {
	rooms     *usecase_room.Usecase
	game      *usecase_game.Usecase
	lastRooms LastRoomReader
	limiter   gin.HandlerFunc
	logger    *slog.Logger
}

func New(
	rooms *usecase_room.Usecase,
	game *usecase_game.Usecase,
	lastRooms LastRoomReader,
	limiter gin.HandlerFunc,
) *Controller {
	return &Controller{
		rooms:     rooms,
		game:      game,
		lastRooms: lastRooms,
		limiter:   limiter,
		logger:    slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.limiter, c.create)
		rooms.GET("/id/:room_id", c.byID)
		rooms.GET("/code/:room_code", c.byCode)
		rooms.GET("/last", c.last)
		rooms.POST("/:room_id/join", c.join)
		rooms.POST("/:room_id/leave", c.leave)
	}
}

type CreateRoomRequestDTO struct {
	HostUserID string `json:"host_user_id" binding:"required"`
	MaxPlayers int    `json:"max_players"`
}

type ContentDTO struct {
	ID       int64   `json:"id"`
	MediaURL string  `json:"media_url"`
	Title    *string `json:"title"`
}

type RoomDTO struct {
	RoomID     string      `json:"room_id"`
	RoomCode   string      `json:"room_code"`
	HostUserID string      `json:"host_user_id"`
	MaxPlayers int         `json:"max_players"`
	Players    []string    `json:"players"`
	Status     string      `json:"status"`
	Phase      string      `json:"phase"`
	Content    *ContentDTO `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
}

func toRoomDTO(room *model.Room) RoomDTO {
	dto := RoomDTO{
		RoomID:     room.ID.String(),
		RoomCode:   room.Code,
		HostUserID: room.HostUserID,
		MaxPlayers: room.MaxPlayers,
		Players:    room.Players,
		Status:     string(room.Status),
		Phase:      string(room.Phase),
		CreatedAt:  room.CreatedAt,
	}
	if room.CurrentContent != nil {
		dto.Content = &ContentDTO{
			ID:       room.CurrentContent.ID,
			MediaURL: room.CurrentContent.MediaURL,
			Title:    room.CurrentContent.Title,
		}
	}
	return dto
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateRoomRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "host_user_id is required",
		})
		return
	}

	room, err := c.rooms.Create(ctx, req.HostUserID, req.MaxPlayers)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrInvalidArgument):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid request",
			})
		case errors.Is(err, usecase_room.ErrRoomsUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toRoomDTO(room))
}

func (c *Controller) byID(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	room, err := c.rooms.ByID(ctx, roomID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	ctx.JSON(http.StatusOK, toRoomDTO(room))
}

func (c *Controller) byCode(ctx *gin.Context) {
	room, err := c.rooms.ByCode(ctx, ctx.Param("room_code"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	ctx.JSON(http.StatusOK, toRoomDTO(room))
}

type LastRoomResponseDTO struct {
	RoomID string `json:"room_id"`
}

func (c *Controller) last(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "user_id is required",
		})
		return
	}

	roomID, err := c.lastRooms.LastRoom(userID)
	if err != nil {
		c.logger.Error("failed to read last room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	if roomID == uuid.Nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	// The hint may outlive the room itself; only report rooms that
	// still exist.
	if _, err := c.rooms.ByID(ctx, roomID); err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	ctx.JSON(http.StatusOK, LastRoomResponseDTO{RoomID: roomID.String()})
}

type MembershipRequestDTO struct {
	UserID string `json:"user_id" binding:"required"`
}

func (c *Controller) join(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	var req MembershipRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "user_id is required",
		})
		return
	}

	room, err := c.game.AddPlayer(ctx, req.UserID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, usecase_game.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		case errors.Is(err, usecase_game.ErrRoomFull):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: "room full"})
		default:
			c.logger.Error("failed to join room", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, toRoomDTO(room))
}

func (c *Controller) leave(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}

	var req MembershipRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "user_id is required",
		})
		return
	}

	if err := c.game.LeavePlayer(ctx, req.UserID, roomID); err != nil {
		if errors.Is(err, usecase_game.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
			return
		}
		c.logger.Error("failed to leave room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
