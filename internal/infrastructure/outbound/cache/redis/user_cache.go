package redis

import (
	"context"
	"errors"
	"time"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
)

const (
	userCacheKeyPrefix = "user:"
	userCacheTTL       = time.Hour
)

type UserCache struct {
	entities entityCache[model.User]
}

func NewUserCache(client *Client, log ports.Logger) *UserCache {
	return &UserCache{
		entities: entityCache[model.User]{
			client: client,
			log:    log,
			name:   "User",
			prefix: userCacheKeyPrefix,
			ttl:    userCacheTTL,
		},
	}
}

func (u *UserCache) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return u.entities.get(ctx, userID)
}

func (u *UserCache) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	return u.entities.set(ctx, user.ID, user)
}

func (u *UserCache) DeleteUser(ctx context.Context, userID int64) error {
	return u.entities.delete(ctx, userID)
}
