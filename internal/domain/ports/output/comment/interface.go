package comment_repository

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/comment --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Update(ctx context.Context, id int64, update *model.UpdateCommentDTO) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPost(ctx context.Context, postID int64) error
	List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int, error)
	CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int, error)
}
