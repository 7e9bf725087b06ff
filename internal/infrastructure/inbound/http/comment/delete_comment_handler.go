package comment_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
)

type CommentDeleter interface {
	DeleteComment(ctx context.Context, requester *model.Requester, id int64) error
}

type DeleteCommentHandler struct {
	commentService CommentDeleter
	log            ports.Logger
}

func NewDeleteCommentHandler(commentService CommentDeleter, log ports.Logger) *DeleteCommentHandler {
	return &DeleteCommentHandler{commentService: commentService, log: log}
}

func (h *DeleteCommentHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.UserContext(), middleware.Requester(c), id); err != nil {
		h.log.Debug("DeleteComment failed", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
