package follower_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type FollowerDeleter interface {
	DeleteFollower(ctx context.Context, requester *model.Requester, id int64) error
}

type DeleteFollowerHandler struct {
	followerService FollowerDeleter
	log             ports.Logger
}

func NewDeleteFollowerHandler(followerService FollowerDeleter, log ports.Logger) *DeleteFollowerHandler {
	return &DeleteFollowerHandler{followerService: followerService, log: log}
}

func (h *DeleteFollowerHandler) DeleteFollower(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	if err := h.followerService.DeleteFollower(c.UserContext(), middleware.Requester(c), id); err != nil {
		h.log.Debug("DeleteFollower failed", slog.Int64("follower_id", id), slog.String("error", err.Error()))
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
