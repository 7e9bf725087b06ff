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

type UserRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log ports.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, username string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.users {
		if existing.Username == username {
			return nil, custom_errors.NewValidationError().Add("username", "A user with that username already exists.")
		}
	}

	user := &model.User{
		ID:        u.nextID,
		Username:  username,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	u.nextID++
	u.users[user.ID] = user

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

func (u *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, exists := u.users[id]; exists {
			userCopy := *user
			users = append(users, &userCopy)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.Username == username {
			result := *user
			return &result, nil
		}
	}
	return nil, custom_errors.ErrUserNotFound
}
