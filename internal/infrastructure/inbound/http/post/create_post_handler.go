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

type PostCreator interface {
	CreatePost(ctx context.Context, requester *model.Requester, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *CreatePostHandler) CreatePost(c *fiber.Ctx) error {
	requester := middleware.Requester(c)
	if err := permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		return err
	}

	var req postRequest
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	h.log.Debug("Received CreatePost request",
		slog.Bool("authenticated", requester.IsAuthenticated()),
		slog.Bool("has_title", req.Title != nil))

	post, err := h.postService.CreatePost(c.UserContext(), requester, &model.CreatePostDTO{
		Title:   deref(req.Title),
		Content: deref(req.Content),
		Image:   deref(req.Image),
	})
	if err != nil {
		h.log.Debug("CreatePost failed", slog.String("error", err.Error()))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newPostResponse(post, requester))
}
