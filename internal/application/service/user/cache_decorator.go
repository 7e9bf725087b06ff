package user_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	user_service "social-feed-service/internal/domain/ports/input/user"
	output "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/domain/ports/output/cache"
)

type UserServiceCacheDecorator struct {
	service   user_service.Service
	userCache cache.UserCache
	log       output.Logger
	metrics   output.MetricsProvider
}

func NewUserServiceCacheDecorator(
	service user_service.Service,
	userCache cache.UserCache,
	log output.Logger,
	metrics output.MetricsProvider,
) user_service.Service {
	return &UserServiceCacheDecorator{
		service:   service,
		userCache: userCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *UserServiceCacheDecorator) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if user, ok := d.fromCache(ctx, id); ok {
		return user, nil
	}

	user, err := d.service.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	d.toCache(ctx, user)
	return user, nil
}

func (d *UserServiceCacheDecorator) GetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	result := make(map[int64]*model.User, len(ids))
	missing := make([]int64, 0, len(ids))

	for _, id := range uniqueIDs(ids) {
		if user, ok := d.fromCache(ctx, id); ok {
			result[id] = user
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	d.log.Debug("Fetching users missing from cache", slog.Int("missing", len(missing)), slog.Int("cached", len(result)))
	fetched, err := d.service.GetUsers(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, user := range fetched {
		result[id] = user
		d.toCache(ctx, user)
	}
	return result, nil
}

func (d *UserServiceCacheDecorator) fromCache(ctx context.Context, id int64) (*model.User, bool) {
	start := time.Now()
	user, err := d.userCache.GetUser(ctx, id)
	d.metrics.RecordCacheOperationDuration("user_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return user, true
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get user from cache", slog.Int64("user_id", id), slog.String("error", err.Error()))
	}
	return nil, false
}

func (d *UserServiceCacheDecorator) toCache(ctx context.Context, user *model.User) {
	start := time.Now()
	if err := d.userCache.SetUser(ctx, user); err != nil {
		d.log.Warn("Failed to cache user", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("user_set", time.Since(start))
}
