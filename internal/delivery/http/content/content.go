package http_content

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/memeparty/server/internal/delivery/http/common"
	usecase_game "github.com/memeparty/server/internal/usecase/game"
)

type Controller struct {
	content usecase_game.ContentProvider
	logger  *slog.Logger
}

func New(content usecase_game.ContentProvider) *Controller {
	return &Controller{
		content: content,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	{
		content.GET("/random", c.random)
	}
}

type ContentResponseDTO struct {
	ID       int64   `json:"id"`
	MediaURL string  `json:"media_url"`
	Title    *string `json:"title"`
}

func (c *Controller) random(ctx *gin.Context) {
	item, err := c.content.PickRandom(ctx)
	if err != nil {
		if errors.Is(err, usecase_game.ErrNoContent) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "no content available",
			})
			return
		}
		c.logger.Error("failed to pick content", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, ContentResponseDTO{
		ID:       item.ID,
		MediaURL: item.MediaURL,
		Title:    item.Title,
	})
}
