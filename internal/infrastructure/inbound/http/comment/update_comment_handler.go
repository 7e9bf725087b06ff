package comment_http

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

type CommentUpdater interface {
	GetCommentByID(ctx context.Context, id int64) (*model.CommentDetailed, error)
	UpdateComment(ctx context.Context, requester *model.Requester, id int64, update *model.UpdateCommentDTO, partial bool) (*model.CommentDetailed, error)
}

type UpdateCommentHandler struct {
	commentService CommentUpdater
	log            ports.Logger
}

func NewUpdateCommentHandler(commentService CommentUpdater, log ports.Logger) *UpdateCommentHandler {
	return &UpdateCommentHandler{commentService: commentService, log: log}
}

func (h *UpdateCommentHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := request.ID(c)
	if err != nil {
		return err
	}

	requester := middleware.Requester(c)
	existing, err := h.commentService.GetCommentByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := permissions.IsOwnerOrReadOnly(requester, permissions.ActionWrite, existing.Comment.OwnerID); err != nil {
		return err
	}

	var req updateCommentRequest
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	partial := c.Method() == fiber.MethodPatch

	comment, err := h.commentService.UpdateComment(c.UserContext(), requester, id,
		&model.UpdateCommentDTO{Content: req.Content}, partial)
	if err != nil {
		h.log.Debug("UpdateComment failed", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		return err
	}

	return c.JSON(newCommentResponse(comment, requester))
}
