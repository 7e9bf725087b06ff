package user_service

import (
	"context"
	"errors"
	"log/slog"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	user_repository "social-feed-service/internal/domain/ports/output/user"
)

type UserService struct {
	repo user_repository.Repository
	log  ports.Logger
}

func NewUserService(repo user_repository.Repository, log ports.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found", slog.Int64("user_id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user", slog.Int64("user_id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (s *UserService) GetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	result := make(map[int64]*model.User, len(ids))
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return result, nil
	}

	users, err := s.repo.GetByIDs(ctx, unique)
	if err != nil {
		s.log.Error("Failed to get users", slog.Int("count", len(unique)), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	for _, u := range users {
		result[u.ID] = u
	}

	if len(result) != len(unique) {
		s.log.Debug("Some users were not found", slog.Int("requested", len(unique)), slog.Int("found", len(result)))
	}
	return result, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
