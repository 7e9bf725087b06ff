package follower_service

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/follower --outpkg mocks --filename Service.go
type Service interface {
	CreateFollower(ctx context.Context, requester *model.Requester, follower *model.CreateFollowerDTO) (*model.FollowerDetailed, error)
	GetFollowerByID(ctx context.Context, id int64) (*model.FollowerDetailed, error)
	ListFollowers(ctx context.Context, filters *model.FollowerFilters) ([]*model.FollowerDetailed, int, error)
	DeleteFollower(ctx context.Context, requester *model.Requester, id int64) error
}
