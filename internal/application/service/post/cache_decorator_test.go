package post_service

import (
	"context"
	"errors"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/infrastructure/logger"
	"social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "social-feed-service/mocks/cache"
	post_service_mock "social-feed-service/mocks/post"
)

func newTestDecorator(t *testing.T) (*PostServiceCacheDecorator, *post_service_mock.Service, *cache_mock.PostCache) {
	inner := post_service_mock.NewService(t)
	postCache := cache_mock.NewPostCache(t)
	d := NewPostServiceCacheDecorator(
		inner,
		postCache,
		logger.New("test"),
		prometheus.NewPrometheusMetricsProvider(prom.NewRegistry()),
	).(*PostServiceCacheDecorator)
	d.redelete = 0
	return d, inner, postCache
}

func TestPostServiceCacheDecorator_GetPostByID(t *testing.T) {
	post := &model.PostDetailed{Post: &model.Post{ID: 1, Title: "a title"}}

	t.Run("Cache hit skips the service", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(1)).Return(post, nil)

		got, err := d.GetPostByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, post, got)
		inner.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss reads through and fills the cache", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(1)).Return(nil, custom_errors.ErrCacheMiss)
		inner.On("GetPostByID", mock.Anything, int64(1)).Return(post, nil)
		postCache.On("SetPost", mock.Anything, post).Return(nil)

		got, err := d.GetPostByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("Cache failure still serves from the service", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(1)).Return(nil, errors.New("redis down"))
		inner.On("GetPostByID", mock.Anything, int64(1)).Return(post, nil)
		postCache.On("SetPost", mock.Anything, post).Return(errors.New("redis down"))

		got, err := d.GetPostByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("Not found is not cached", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(1)).Return(nil, custom_errors.ErrCacheMiss)
		inner.On("GetPostByID", mock.Anything, int64(1)).Return(nil, custom_errors.ErrPostNotFound)

		_, err := d.GetPostByID(context.Background(), 1)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		postCache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})
}

func TestPostServiceCacheDecorator_Invalidation(t *testing.T) {
	requester := &model.Requester{UserID: 1}
	title := "a new title"

	t.Run("Update invalidates", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		update := &model.UpdatePostDTO{Title: &title}
		inner.On("UpdatePost", mock.Anything, requester, int64(1), update, true).
			Return(&model.PostDetailed{Post: &model.Post{ID: 1, Title: title}}, nil)
		postCache.On("DeletePost", mock.Anything, int64(1)).Return(nil)

		_, err := d.UpdatePost(context.Background(), requester, 1, update, true)
		require.NoError(t, err)
	})

	t.Run("Failed update leaves the cache alone", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		inner.On("UpdatePost", mock.Anything, requester, int64(1), mock.Anything, false).
			Return(nil, custom_errors.ErrForbidden)

		_, err := d.UpdatePost(context.Background(), requester, 1, &model.UpdatePostDTO{}, false)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		postCache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})

	t.Run("Delete invalidates", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		inner.On("DeletePost", mock.Anything, requester, int64(1)).Return(nil)
		postCache.On("DeletePost", mock.Anything, int64(1)).Return(nil)

		require.NoError(t, d.DeletePost(context.Background(), requester, 1))
	})

	t.Run("Update evicts the post again after a delay", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		d.redelete = 10 * time.Millisecond
		update := &model.UpdatePostDTO{Title: &title}
		inner.On("UpdatePost", mock.Anything, requester, int64(1), update, false).
			Return(&model.PostDetailed{Post: &model.Post{ID: 1, Title: title}}, nil)
		deleted := make(chan struct{}, 2)
		postCache.On("DeletePost", mock.Anything, int64(1)).
			Run(func(mock.Arguments) { deleted <- struct{}{} }).
			Return(nil).Times(2)

		ctx, cancel := context.WithCancel(context.Background())
		_, err := d.UpdatePost(ctx, requester, 1, update, false)
		cancel()
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			select {
			case <-deleted:
			case <-time.After(time.Second):
				t.Fatalf("expected 2 cache evictions, got %d", i)
			}
		}
	})

	t.Run("Create primes the cache", func(t *testing.T) {
		d, inner, postCache := newTestDecorator(t)
		created := &model.PostDetailed{Post: &model.Post{ID: 3, Title: "a title"}}
		inner.On("CreatePost", mock.Anything, requester, mock.Anything).Return(created, nil)
		postCache.On("SetPost", mock.Anything, created).Return(nil)

		got, err := d.CreatePost(context.Background(), requester, &model.CreatePostDTO{Title: "a title"})
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}
