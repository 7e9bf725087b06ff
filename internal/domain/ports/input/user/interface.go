package user_service

import (
	"context"

	model "social-feed-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/user --outpkg mocks --filename Service.go
type Service interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error)
}
