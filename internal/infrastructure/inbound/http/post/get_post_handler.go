package post_http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.GetPostByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newPostResponse(post, middleware.Requester(c)))
}
