package redis

import (
	"context"
	"errors"
	"time"

	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
)

const (
	postCacheKeyPrefix = "post:"
	postCacheTTL       = 30 * time.Minute
)

// PostCache keeps the requester-independent post detail.
type PostCache struct {
	entities entityCache[model.PostDetailed]
}

func NewPostCache(client *Client, log ports.Logger) *PostCache {
	return &PostCache{
		entities: entityCache[model.PostDetailed]{
			client: client,
			log:    log,
			name:   "Post",
			prefix: postCacheKeyPrefix,
			ttl:    postCacheTTL,
		},
	}
}

func (p *PostCache) GetPost(ctx context.Context, postID int64) (*model.PostDetailed, error) {
	return p.entities.get(ctx, postID)
}

func (p *PostCache) SetPost(ctx context.Context, post *model.PostDetailed) error {
	if post == nil || post.Post == nil {
		return errors.New("post cannot be nil")
	}
	return p.entities.set(ctx, post.Post.ID, post)
}

func (p *PostCache) DeletePost(ctx context.Context, postID int64) error {
	return p.entities.delete(ctx, postID)
}
