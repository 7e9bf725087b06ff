package post_service

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	CreatePost(ctx context.Context, requester *model.Requester, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error)
	UpdatePost(ctx context.Context, requester *model.Requester, id int64, update *model.UpdatePostDTO, partial bool) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, requester *model.Requester, id int64) error
}
