package comment_http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type CommentLister interface {
	ListComments(ctx context.Context, filters *model.CommentFilters) ([]*model.CommentDetailed, int, error)
}

type ListCommentsHandler struct {
	commentService CommentLister
	paging         request.Paging
	log            ports.Logger
}

func NewListCommentsHandler(commentService CommentLister, paging request.Paging, log ports.Logger) *ListCommentsHandler {
	return &ListCommentsHandler{commentService: commentService, paging: paging, log: log}
}

// ListComments supports ?post=<id> and ?owner=<id> exact-match filters.
func (h *ListCommentsHandler) ListComments(c *fiber.Ctx) error {
	verr := custom_errors.NewValidationError()
	filters := &model.CommentFilters{
		PostID:  request.OptionalInt64(c, "post", verr),
		OwnerID: request.OptionalInt64(c, "owner", verr),
	}
	if !verr.Empty() {
		return verr
	}

	limit, offset := h.paging.Parse(c)
	filters.Limit = &limit
	filters.Offset = &offset

	comments, total, err := h.commentService.ListComments(c.UserContext(), filters)
	if err != nil {
		return err
	}

	requester := middleware.Requester(c)
	results := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		results = append(results, newCommentResponse(cm, requester))
	}
	return c.JSON(response.NewList(total, results))
}
