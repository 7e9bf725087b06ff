package comment_service

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/comment --outpkg mocks --filename Service.go
type Service interface {
	CreateComment(ctx context.Context, requester *model.Requester, comment *model.CreateCommentDTO) (*model.CommentDetailed, error)
	GetCommentByID(ctx context.Context, id int64) (*model.CommentDetailed, error)
	ListComments(ctx context.Context, filters *model.CommentFilters) ([]*model.CommentDetailed, int, error)
	UpdateComment(ctx context.Context, requester *model.Requester, id int64, update *model.UpdateCommentDTO, partial bool) (*model.CommentDetailed, error)
	DeleteComment(ctx context.Context, requester *model.Requester, id int64) error
}
