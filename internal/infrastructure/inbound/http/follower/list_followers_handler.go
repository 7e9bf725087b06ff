package follower_http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type FollowerLister interface {
	ListFollowers(ctx context.Context, filters *model.FollowerFilters) ([]*model.FollowerDetailed, int, error)
}

type ListFollowersHandler struct {
	followerService FollowerLister
	paging          request.Paging
	log             ports.Logger
}

func NewListFollowersHandler(followerService FollowerLister, paging request.Paging, log ports.Logger) *ListFollowersHandler {
	return &ListFollowersHandler{followerService: followerService, paging: paging, log: log}
}

func (h *ListFollowersHandler) ListFollowers(c *fiber.Ctx) error {
	verr := custom_errors.NewValidationError()
	filters := &model.FollowerFilters{
		OwnerID:    request.OptionalInt64(c, "owner", verr),
		FollowedID: request.OptionalInt64(c, "followed", verr),
	}
	if !verr.Empty() {
		return verr
	}

	limit, offset := h.paging.Parse(c)
	filters.Limit = &limit
	filters.Offset = &offset

	followers, total, err := h.followerService.ListFollowers(c.UserContext(), filters)
	if err != nil {
		return err
	}

	results := make([]FollowerResponse, 0, len(followers))
	for _, f := range followers {
		results = append(results, newFollowerResponse(f))
	}
	return c.JSON(response.NewList(total, results))
}
