package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
)

type pair struct {
	owner    int64
	followed int64
}

type FollowerRepository struct {
	log       ports.Logger
	mu        sync.RWMutex
	followers map[int64]*model.Follower
	pairs     map[pair]int64
	nextID    int64
}

func NewFollowerRepository(log ports.Logger) *FollowerRepository {
	return &FollowerRepository{
		log:       log,
		followers: make(map[int64]*model.Follower),
		pairs:     make(map[pair]int64),
		nextID:    1,
	}
}

func (f *FollowerRepository) Create(ctx context.Context, follower *model.Follower) (*model.Follower, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pair{owner: follower.OwnerID, followed: follower.FollowedID}
	if _, exists := f.pairs[key]; exists {
		return nil, custom_errors.ErrDuplicateFollow
	}

	created := &model.Follower{
		ID:         f.nextID,
		OwnerID:    follower.OwnerID,
		FollowedID: follower.FollowedID,
		CreatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	f.nextID++
	f.followers[created.ID] = created
	f.pairs[key] = created.ID

	result := *created
	return &result, nil
}

func (f *FollowerRepository) GetByID(ctx context.Context, id int64) (*model.Follower, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	follower, exists := f.followers[id]
	if !exists {
		return nil, custom_errors.ErrFollowerNotFound
	}
	result := *follower
	return &result, nil
}

func (f *FollowerRepository) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	follower, exists := f.followers[id]
	if !exists {
		return custom_errors.ErrFollowerNotFound
	}
	delete(f.pairs, pair{owner: follower.OwnerID, followed: follower.FollowedID})
	delete(f.followers, id)
	return nil
}

func (f *FollowerRepository) List(ctx context.Context, filters model.FollowerFilters) ([]*model.Follower, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	filtered := make([]*model.Follower, 0, len(f.followers))
	for _, follower := range f.followers {
		if filters.OwnerID != nil && follower.OwnerID != *filters.OwnerID {
			continue
		}
		if filters.FollowedID != nil && follower.FollowedID != *filters.FollowedID {
			continue
		}
		followerCopy := *follower
		filtered = append(filtered, &followerCopy)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })

	total := len(filtered)
	if filters.Offset != nil {
		if *filters.Offset >= len(filtered) {
			return []*model.Follower{}, total, nil
		}
		filtered = filtered[*filters.Offset:]
	}
	if filters.Limit != nil && *filters.Limit < len(filtered) {
		filtered = filtered[:*filters.Limit]
	}
	return filtered, total, nil
}
