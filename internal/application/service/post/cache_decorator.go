package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	post_service "social-feed-service/internal/domain/ports/input/post"
	output "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/domain/ports/output/cache"
)

// redeleteDelay is how long after a write the post key is dropped a second time,
// evicting a stale entry that a concurrent read-through may have stored meanwhile.
const redeleteDelay = 500 * time.Millisecond

type PostServiceCacheDecorator struct {
	service   post_service.Service
	postCache cache.PostCache
	log       output.Logger
	metrics   output.MetricsProvider
	redelete  time.Duration
}

func NewPostServiceCacheDecorator(
	service post_service.Service,
	postCache cache.PostCache,
	log output.Logger,
	metrics output.MetricsProvider,
) post_service.Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
		redelete:  redeleteDelay,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, requester *model.Requester, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, requester, post)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.Post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	d.log.Debug("Getting post by ID with cache decorator", slog.Int64("post_id", id))

	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setCacheStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setCacheStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error) {
	return d.service.ListPosts(ctx, filters)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, requester *model.Requester, id int64, update *model.UpdatePostDTO, partial bool) (*model.PostDetailed, error) {
	result, err := d.service.UpdatePost(ctx, requester, id, update, partial)
	if err != nil {
		return nil, err
	}

	d.invalidate(ctx, id, "update")
	return result, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, requester *model.Requester, id int64) error {
	if err := d.service.DeletePost(ctx, requester, id); err != nil {
		return err
	}

	d.invalidate(ctx, id, "delete")
	return nil
}

func (d *PostServiceCacheDecorator) invalidate(ctx context.Context, id int64, reason string) {
	d.deletePost(ctx, id, reason)

	if d.redelete <= 0 {
		return
	}
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(d.redelete, func() {
		ctx, cancel := context.WithTimeout(bg, 2*time.Second)
		defer cancel()
		d.deletePost(ctx, id, reason+"_delayed")
	})
}

func (d *PostServiceCacheDecorator) deletePost(ctx context.Context, id int64, reason string) {
	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache",
			slog.Int64("post_id", id),
			slog.String("reason", reason),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))
}
