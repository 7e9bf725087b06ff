package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/infrastructure/logger"
	"social-feed-service/internal/infrastructure/outbound/cache/redis"
)

func setupCacheTest(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return redis.NewClientFromRedis(rdb, logger.New("test"), nil), mr
}

func TestPostCache(t *testing.T) {
	client, mr := setupCacheTest(t)
	cache := redis.NewPostCache(client, logger.New("test"))
	ctx := context.Background()

	_, err := cache.GetPost(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	post := &model.PostDetailed{
		Post:          &model.Post{ID: 1, OwnerID: 2, Title: "a title"},
		Owner:         &model.User{ID: 2, Username: "adam"},
		CommentsCount: 3,
	}
	require.NoError(t, cache.SetPost(ctx, post))
	assert.True(t, mr.Exists("post:1"))
	assert.Equal(t, 30*time.Minute, mr.TTL("post:1"))

	got, err := cache.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a title", got.Post.Title)
	assert.Equal(t, "adam", got.Owner.Username)
	assert.Equal(t, 3, got.CommentsCount)

	require.NoError(t, cache.DeletePost(ctx, 1))
	_, err = cache.GetPost(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	assert.Error(t, cache.SetPost(ctx, &model.PostDetailed{}))
}

func TestUserCache(t *testing.T) {
	client, mr := setupCacheTest(t)
	cache := redis.NewUserCache(client, logger.New("test"))
	ctx := context.Background()

	require.NoError(t, cache.SetUser(ctx, &model.User{ID: 5, Username: "brian"}))
	assert.Equal(t, time.Hour, mr.TTL("user:5"))

	got, err := cache.GetUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "brian", got.Username)

	mr.FastForward(2 * time.Hour)
	_, err = cache.GetUser(ctx, 5)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)
}
