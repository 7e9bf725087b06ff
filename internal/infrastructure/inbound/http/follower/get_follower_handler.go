package follower_http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type FollowerGetter interface {
	GetFollowerByID(ctx context.Context, id int64) (*model.FollowerDetailed, error)
}

type GetFollowerHandler struct {
	followerService FollowerGetter
	log             ports.Logger
}

func NewGetFollowerHandler(followerService FollowerGetter, log ports.Logger) *GetFollowerHandler {
	return &GetFollowerHandler{followerService: followerService, log: log}
}

func (h *GetFollowerHandler) GetFollower(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	follower, err := h.followerService.GetFollowerByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newFollowerResponse(follower))
}
