package comment_http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type CommentGetter interface {
	GetCommentByID(ctx context.Context, id int64) (*model.CommentDetailed, error)
}

type GetCommentHandler struct {
	commentService CommentGetter
	log            ports.Logger
}

func NewGetCommentHandler(commentService CommentGetter, log ports.Logger) *GetCommentHandler {
	return &GetCommentHandler{commentService: commentService, log: log}
}

func (h *GetCommentHandler) GetComment(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.GetCommentByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newCommentResponse(comment, middleware.Requester(c)))
}
