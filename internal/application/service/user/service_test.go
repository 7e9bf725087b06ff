package user_service

import (
	"context"
	"errors"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/infrastructure/logger"
	"social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "social-feed-service/mocks/cache"
	user_mock "social-feed-service/mocks/user"
)

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Found"},
		{name: "Not found", repoErr: custom_errors.ErrUserNotFound, wantErr: custom_errors.ErrUserNotFound},
		{name: "Database failure", repoErr: errors.New("conn reset"), wantErr: custom_errors.ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := user_mock.NewRepository(t)
			if tt.repoErr != nil {
				repo.On("GetByID", mock.Anything, int64(1)).Return(nil, tt.repoErr)
			} else {
				repo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Username: "adam"}, nil)
			}

			got, err := NewUserService(repo, logger.New("test")).GetUser(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "adam", got.Username)
		})
	}
}

func TestUserService_GetUsers(t *testing.T) {
	t.Run("Deduplicates ids", func(t *testing.T) {
		repo := user_mock.NewRepository(t)
		repo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*model.User{
			{ID: 1, Username: "adam"},
			{ID: 2, Username: "brian"},
		}, nil)

		got, err := NewUserService(repo, logger.New("test")).GetUsers(context.Background(), []int64{1, 2, 1})

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "brian", got[2].Username)
	})

	t.Run("Empty input skips the repository", func(t *testing.T) {
		repo := user_mock.NewRepository(t)

		got, err := NewUserService(repo, logger.New("test")).GetUsers(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUserServiceCacheDecorator_GetUsers(t *testing.T) {
	inner := user_mock.NewService(t)
	userCache := cache_mock.NewUserCache(t)
	d := NewUserServiceCacheDecorator(inner, userCache, logger.New("test"),
		prometheus.NewPrometheusMetricsProvider(prom.NewRegistry()))

	adam := &model.User{ID: 1, Username: "adam"}
	brian := &model.User{ID: 2, Username: "brian"}

	userCache.On("GetUser", mock.Anything, int64(1)).Return(adam, nil)
	userCache.On("GetUser", mock.Anything, int64(2)).Return(nil, custom_errors.ErrCacheMiss)
	inner.On("GetUsers", mock.Anything, []int64{2}).Return(map[int64]*model.User{2: brian}, nil)
	userCache.On("SetUser", mock.Anything, brian).Return(nil)

	got, err := d.GetUsers(context.Background(), []int64{1, 2, 2})

	require.NoError(t, err)
	assert.Equal(t, map[int64]*model.User{1: adam, 2: brian}, got)
}

func TestUserServiceCacheDecorator_GetUser(t *testing.T) {
	t.Run("Hit", func(t *testing.T) {
		inner := user_mock.NewService(t)
		userCache := cache_mock.NewUserCache(t)
		d := NewUserServiceCacheDecorator(inner, userCache, logger.New("test"),
			prometheus.NewPrometheusMetricsProvider(prom.NewRegistry()))
		userCache.On("GetUser", mock.Anything, int64(1)).Return(&model.User{ID: 1, Username: "adam"}, nil)

		got, err := d.GetUser(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "adam", got.Username)
	})

	t.Run("Unknown user is not cached", func(t *testing.T) {
		inner := user_mock.NewService(t)
		userCache := cache_mock.NewUserCache(t)
		d := NewUserServiceCacheDecorator(inner, userCache, logger.New("test"),
			prometheus.NewPrometheusMetricsProvider(prom.NewRegistry()))
		userCache.On("GetUser", mock.Anything, int64(9)).Return(nil, errors.New("redis down"))
		inner.On("GetUser", mock.Anything, int64(9)).Return(nil, custom_errors.ErrUserNotFound)

		_, err := d.GetUser(context.Background(), 9)

		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
		userCache.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything)
	})
}
