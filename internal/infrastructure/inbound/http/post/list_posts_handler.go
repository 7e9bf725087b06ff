package post_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error)
}

type ListPostsHandler struct {
	postService PostLister
	paging      request.Paging
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, paging request.Paging, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		paging:      paging,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(c *fiber.Ctx) error {
	verr := custom_errors.NewValidationError()
	owner := request.OptionalInt64(c, "owner", verr)
	if !verr.Empty() {
		return verr
	}

	limit, offset := h.paging.Parse(c)
	filters := &model.PostFilters{
		OwnerID: owner,
		Limit:   &limit,
		Offset:  &offset,
	}

	posts, total, err := h.postService.ListPosts(c.UserContext(), filters)
	if err != nil {
		return err
	}

	requester := middleware.Requester(c)
	results := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		results = append(results, newPostResponse(p, requester))
	}

	h.log.Debug("Listed posts", slog.Int("count", len(results)), slog.Int("total", total))
	return c.JSON(response.NewList(total, results))
}
