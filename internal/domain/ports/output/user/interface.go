package user_repository

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/user --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
