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

type CommentCreator interface {
	CreateComment(ctx context.Context, requester *model.Requester, comment *model.CreateCommentDTO) (*model.CommentDetailed, error)
}

type CreateCommentHandler struct {
	commentService CommentCreator
	log            ports.Logger
}

func NewCreateCommentHandler(commentService CommentCreator, log ports.Logger) *CreateCommentHandler {
	return &CreateCommentHandler{commentService: commentService, log: log}
}

func (h *CreateCommentHandler) CreateComment(c *fiber.Ctx) error {
	requester := middleware.Requester(c)
	if err := permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		return err
	}

	var req createCommentRequest
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	dto := &model.CreateCommentDTO{}
	if req.Post != nil {
		dto.PostID = *req.Post
	}
	if req.Content != nil {
		dto.Content = *req.Content
	}

	comment, err := h.commentService.CreateComment(c.UserContext(), requester, dto)
	if err != nil {
		h.log.Debug("CreateComment failed", slog.Int64("post_id", dto.PostID), slog.String("error", err.Error()))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCommentResponse(comment, requester))
}
