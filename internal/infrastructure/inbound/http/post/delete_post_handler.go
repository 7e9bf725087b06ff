package post_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, requester *model.Requester, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.UserContext(), middleware.Requester(c), id); err != nil {
		h.log.Debug("DeletePost failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
