package post_http

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

type PostUpdater interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, requester *model.Requester, id int64, update *model.UpdatePostDTO, partial bool) (*model.PostDetailed, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		log:         log,
	}
}

// UpdatePost serves PUT (all writable fields) and PATCH (supplied fields only).
// The body is read only once the requester is known to own the post.
func (h *UpdatePostHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	requester := middleware.Requester(c)
	existing, err := h.postService.GetPostByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := permissions.IsOwnerOrReadOnly(requester, permissions.ActionWrite, existing.Post.OwnerID); err != nil {
		return err
	}

	var req postRequest
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	partial := c.Method() == fiber.MethodPatch

	h.log.Debug("Received UpdatePost request",
		slog.Int64("post_id", id),
		slog.Bool("partial", partial),
		slog.Bool("has_title_update", req.Title != nil),
		slog.Bool("has_content_update", req.Content != nil),
		slog.Bool("has_image_update", req.Image != nil))

	post, err := h.postService.UpdatePost(c.UserContext(), requester, id, &model.UpdatePostDTO{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	}, partial)
	if err != nil {
		h.log.Debug("UpdatePost failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return err
	}

	return c.JSON(newPostResponse(post, requester))
}
