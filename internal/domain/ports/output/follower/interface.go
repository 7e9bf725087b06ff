package follower_repository

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/follower --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, follower *model.Follower) (*model.Follower, error)
	GetByID(ctx context.Context, id int64) (*model.Follower, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters model.FollowerFilters) ([]*model.Follower, int, error)
}
