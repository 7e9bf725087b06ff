package follower_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/domain/permissions"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type FollowerCreator interface {
	CreateFollower(ctx context.Context, requester *model.Requester, follower *model.CreateFollowerDTO) (*model.FollowerDetailed, error)
}

type CreateFollowerHandler struct {
	followerService FollowerCreator
	log             ports.Logger
}

func NewCreateFollowerHandler(followerService FollowerCreator, log ports.Logger) *CreateFollowerHandler {
	return &CreateFollowerHandler{followerService: followerService, log: log}
}

func (h *CreateFollowerHandler) CreateFollower(c *fiber.Ctx) error {
	requester := middleware.Requester(c)
	if err := permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		return err
	}

	var req createFollowerRequest
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	dto := &model.CreateFollowerDTO{}
	if req.Followed != nil {
		dto.FollowedID = *req.Followed
	}

	follower, err := h.followerService.CreateFollower(c.UserContext(), requester, dto)
	if err != nil {
		h.log.Debug("CreateFollower failed", slog.Int64("followed_id", dto.FollowedID), slog.String("error", err.Error()))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newFollowerResponse(follower))
}
