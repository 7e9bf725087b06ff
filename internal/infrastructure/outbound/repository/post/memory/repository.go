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

type PostRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		OwnerID:   post.OwnerID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, exists := p.posts[id]
	return exists, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Image != nil {
		post.Image = *update.Image
	}

	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.log.Debug("Listing posts with filters (memory impl)",
		slog.Any("owner_id", filters.OwnerID),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	p.mu.RLock()
	defer p.mu.RUnlock()

	filteredPosts := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		if filters.OwnerID != nil && post.OwnerID != *filters.OwnerID {
			continue
		}
		postCopy := *post
		filteredPosts = append(filteredPosts, &postCopy)
	}

	sort.Slice(filteredPosts, func(i, j int) bool {
		if filteredPosts[i].CreatedAt.Time.Equal(filteredPosts[j].CreatedAt.Time) {
			return filteredPosts[i].ID > filteredPosts[j].ID
		}
		return filteredPosts[i].CreatedAt.Time.After(filteredPosts[j].CreatedAt.Time)
	})

	total := len(filteredPosts)
	return paginate(filteredPosts, filters.Offset, filters.Limit), total, nil
}

func paginate[T any](items []T, offset, limit *int) []T {
	if offset != nil {
		if *offset >= len(items) {
			return []T{}
		}
		items = items[*offset:]
	}
	if limit != nil && *limit < len(items) {
		items = items[:*limit]
	}
	return items
}
