package comment_service

import (
	"context"
	"log/slog"
	"time"

	model "social-feed-service/internal/domain/models"
	comment_service "social-feed-service/internal/domain/ports/input/comment"
	output "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/domain/ports/output/cache"
)

// CommentServiceCacheDecorator drops the cached parent post whenever its comment count changes.
// redeleteDelay matches the post decorator's second eviction of the parent post.
const redeleteDelay = 500 * time.Millisecond

type CommentServiceCacheDecorator struct {
	service   comment_service.Service
	postCache cache.PostCache
	log       output.Logger
	metrics   output.MetricsProvider
	redelete  time.Duration
}

func NewCommentServiceCacheDecorator(
	service comment_service.Service,
	postCache cache.PostCache,
	log output.Logger,
	metrics output.MetricsProvider,
) comment_service.Service {
	return &CommentServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
		redelete:  redeleteDelay,
	}
}

func (d *CommentServiceCacheDecorator) CreateComment(ctx context.Context, requester *model.Requester, comment *model.CreateCommentDTO) (*model.CommentDetailed, error) {
	result, err := d.service.CreateComment(ctx, requester, comment)
	if err != nil {
		return nil, err
	}

	d.invalidatePost(ctx, result.Comment.PostID)
	return result, nil
}

func (d *CommentServiceCacheDecorator) GetCommentByID(ctx context.Context, id int64) (*model.CommentDetailed, error) {
	return d.service.GetCommentByID(ctx, id)
}

func (d *CommentServiceCacheDecorator) ListComments(ctx context.Context, filters *model.CommentFilters) ([]*model.CommentDetailed, int, error) {
	return d.service.ListComments(ctx, filters)
}

func (d *CommentServiceCacheDecorator) UpdateComment(ctx context.Context, requester *model.Requester, id int64, update *model.UpdateCommentDTO, partial bool) (*model.CommentDetailed, error) {
	return d.service.UpdateComment(ctx, requester, id, update, partial)
}

func (d *CommentServiceCacheDecorator) DeleteComment(ctx context.Context, requester *model.Requester, id int64) error {
	var postID int64
	if existing, err := d.service.GetCommentByID(ctx, id); err == nil && existing.Comment != nil {
		postID = existing.Comment.PostID
	}

	if err := d.service.DeleteComment(ctx, requester, id); err != nil {
		return err
	}

	if postID != 0 {
		d.invalidatePost(ctx, postID)
	}
	return nil
}

func (d *CommentServiceCacheDecorator) invalidatePost(ctx context.Context, postID int64) {
	d.deletePost(ctx, postID)

	if d.redelete <= 0 {
		return
	}
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(d.redelete, func() {
		ctx, cancel := context.WithTimeout(bg, 2*time.Second)
		defer cancel()
		d.deletePost(ctx, postID)
	})
}

func (d *CommentServiceCacheDecorator) deletePost(ctx context.Context, postID int64) {
	start := time.Now()
	if err := d.postCache.DeletePost(ctx, postID); err != nil {
		d.log.Warn("Failed to invalidate post cache after comment change",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))
}
