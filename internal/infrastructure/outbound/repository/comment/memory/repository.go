package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
)

type CommentRepository struct {
	log      ports.Logger
	mu       sync.RWMutex
	comments map[int64]*model.Comment
	nextID   int64
}

func NewCommentRepository(log ports.Logger) *CommentRepository {
	return &CommentRepository{
		log:      log,
		comments: make(map[int64]*model.Comment),
		nextID:   1,
	}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := &model.Comment{
		ID:        c.nextID,
		OwnerID:   comment.OwnerID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.nextID++
	c.comments[created.ID] = created

	result := *created
	return &result, nil
}

func (c *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	comment, exists := c.comments[id]
	if !exists {
		c.log.Debug("Comment not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrCommentNotFound
	}

	result := *comment
	return &result, nil
}

func (c *CommentRepository) Update(ctx context.Context, id int64, update *model.UpdateCommentDTO) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	comment, exists := c.comments[id]
	if !exists {
		return nil, custom_errors.ErrCommentNotFound
	}

	if update.Content != nil {
		comment.Content = *update.Content
	}
	comment.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *comment
	return &result, nil
}

func (c *CommentRepository) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.comments[id]; !exists {
		return custom_errors.ErrCommentNotFound
	}
	delete(c.comments, id)
	return nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, comment := range c.comments {
		if comment.PostID == postID {
			delete(c.comments, id)
		}
	}
	return nil
}

func (c *CommentRepository) List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	filtered := make([]*model.Comment, 0, len(c.comments))
	for _, comment := range c.comments {
		if filters.PostID != nil && comment.PostID != *filters.PostID {
			continue
		}
		if filters.OwnerID != nil && comment.OwnerID != *filters.OwnerID {
			continue
		}
		commentCopy := *comment
		filtered = append(filtered, &commentCopy)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Time.Equal(filtered[j].CreatedAt.Time) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].CreatedAt.Time.After(filtered[j].CreatedAt.Time)
	})

	total := len(filtered)
	if filters.Offset != nil {
		if *filters.Offset >= len(filtered) {
			return []*model.Comment{}, total, nil
		}
		filtered = filtered[*filters.Offset:]
	}
	if filters.Limit != nil && *filters.Limit < len(filtered) {
		filtered = filtered[:*filters.Limit]
	}
	return filtered, total, nil
}

func (c *CommentRepository) CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = struct{}{}
	}

	counts := make(map[int64]int, len(postIDs))
	for _, comment := range c.comments {
		if _, ok := wanted[comment.PostID]; ok {
			counts[comment.PostID]++
		}
	}
	return counts, nil
}
