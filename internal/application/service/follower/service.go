package follower_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"social-feed-service/internal/application/validation"
	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/domain/permissions"
	user_service "social-feed-service/internal/domain/ports/input/user"
	ports "social-feed-service/internal/domain/ports/output"
	follower_repository "social-feed-service/internal/domain/ports/output/follower"
	"social-feed-service/internal/domain/ports/output/uow"
)

type FollowerService struct {
	followerRepo follower_repository.Repository
	uow          uow.UnitOfWork
	users        user_service.Service
	validate     *validator.Validate
	log          ports.Logger
	metrics      ports.MetricsProvider
}

func NewFollowerService(
	followerRepo follower_repository.Repository,
	unitOfWork uow.UnitOfWork,
	users user_service.Service,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *FollowerService {
	return &FollowerService{
		followerRepo: followerRepo,
		uow:          unitOfWork,
		users:        users,
		validate:     validate,
		log:          log,
		metrics:      metrics,
	}
}

// CreateFollower records that the requester follows another user. Self-follows are accepted;
// a repeated (owner, followed) pair is rejected with ErrDuplicateFollow.
func (s *FollowerService) CreateFollower(ctx context.Context, requester *model.Requester, follower *model.CreateFollowerDTO) (result *model.FollowerDetailed, err error) {
	defer func() { s.metrics.IncrementFollowerOperations("create", err == nil) }()

	if err = permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		s.log.Debug("Anonymous follow rejected")
		return nil, err
	}

	follower.OwnerID = requester.UserID
	if err = validation.Struct(s.validate, follower); err != nil {
		return nil, err
	}

	if _, err = s.users.GetUser(ctx, follower.FollowedID); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Follow references unknown user", slog.Int64("followed_id", follower.FollowedID))
			return nil, custom_errors.NewValidationError().
				Add("followed", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", follower.FollowedID))
		}
		return nil, err
	}

	created, err := s.followerRepo.Create(ctx, &model.Follower{
		OwnerID:    follower.OwnerID,
		FollowedID: follower.FollowedID,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrDuplicateFollow) {
			s.log.Debug("Duplicate follow",
				slog.Int64("owner_id", follower.OwnerID),
				slog.Int64("followed_id", follower.FollowedID))
			return nil, custom_errors.ErrDuplicateFollow
		}
		s.log.Error("Failed to create follower", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, []*model.Follower{created})
	if err != nil {
		return nil, err
	}

	s.log.Info("Follower created",
		slog.Int64("follower_id", created.ID),
		slog.Int64("owner_id", created.OwnerID),
		slog.Int64("followed_id", created.FollowedID))
	return details[0], nil
}

func (s *FollowerService) GetFollowerByID(ctx context.Context, id int64) (*model.FollowerDetailed, error) {
	follower, err := s.followerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrFollowerNotFound) {
			s.log.Debug("Follower not found", slog.Int64("id", id))
			return nil, custom_errors.ErrFollowerNotFound
		}
		s.log.Error("Failed to get follower by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, []*model.Follower{follower})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *FollowerService) ListFollowers(ctx context.Context, filters *model.FollowerFilters) ([]*model.FollowerDetailed, int, error) {
	if filters == nil {
		filters = &model.FollowerFilters{}
	}

	followers, total, err := s.followerRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list followers", slog.String("error", err.Error()))
		s.metrics.IncrementFollowerOperations("list", false)
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, followers)
	if err != nil {
		s.metrics.IncrementFollowerOperations("list", false)
		return nil, 0, err
	}

	s.metrics.IncrementFollowerOperations("list", true)
	return details, total, nil
}

func (s *FollowerService) DeleteFollower(ctx context.Context, requester *model.Requester, id int64) (err error) {
	defer func() { s.metrics.IncrementFollowerOperations("delete", err == nil) }()

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if txCommitted || tx == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !strings.Contains(rollbackErr.Error(), "tx is closed") {
			s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		}
	}()

	followerRepo := tx.FollowerRepository()

	existing, err := followerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrFollowerNotFound) {
			return custom_errors.ErrFollowerNotFound
		}
		s.log.Error("Failed to get follower for delete", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = permissions.IsOwnerOrReadOnly(requester, permissions.ActionDelete, existing.OwnerID); err != nil {
		s.log.Debug("Requester is not owner of follower edge", slog.Int64("follower_id", id), slog.Int64("owner_id", existing.OwnerID))
		return err
	}

	if err = followerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrFollowerNotFound) {
			return custom_errors.ErrFollowerNotFound
		}
		s.log.Error("Failed to delete follower", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Follower deleted", slog.Int64("follower_id", id))
	return nil
}

func (s *FollowerService) detail(ctx context.Context, followers []*model.Follower) ([]*model.FollowerDetailed, error) {
	result := make([]*model.FollowerDetailed, 0, len(followers))
	if len(followers) == 0 {
		return result, nil
	}

	userIDs := make([]int64, 0, len(followers)*2)
	for _, f := range followers {
		userIDs = append(userIDs, f.OwnerID, f.FollowedID)
	}

	users, err := s.users.GetUsers(ctx, userIDs)
	if err != nil {
		s.log.Error("Failed to resolve follower users", slog.String("error", err.Error()))
		return nil, err
	}

	for _, f := range followers {
		result = append(result, &model.FollowerDetailed{
			Follower: f,
			Owner:    users[f.OwnerID],
			Followed: users[f.FollowedID],
		})
	}
	return result, nil
}
