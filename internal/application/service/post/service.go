package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"social-feed-service/internal/application/validation"
	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/domain/permissions"
	user_service "social-feed-service/internal/domain/ports/input/user"
	ports "social-feed-service/internal/domain/ports/output"
	comment_repository "social-feed-service/internal/domain/ports/output/comment"
	post_repository "social-feed-service/internal/domain/ports/output/post"
	"social-feed-service/internal/domain/ports/output/uow"
)

type PostService struct {
	postRepo    post_repository.Repository
	commentRepo comment_repository.Repository
	uow         uow.UnitOfWork
	users       user_service.Service
	validate    *validator.Validate
	log         ports.Logger
	metrics     ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	commentRepo comment_repository.Repository,
	unitOfWork uow.UnitOfWork,
	users user_service.Service,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		uow:         unitOfWork,
		users:       users,
		validate:    validate,
		log:         log,
		metrics:     metrics,
	}
}

func (s *PostService) CreatePost(ctx context.Context, requester *model.Requester, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	if err := permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		s.log.Debug("Anonymous post creation rejected")
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	post.OwnerID = requester.UserID
	validation.TrimSpace(&post.Title, &post.Content)
	if err := validation.Struct(s.validate, post); err != nil {
		s.log.Debug("Post validation failed", slog.Int64("owner_id", requester.UserID), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	owner, err := s.users.GetUser(ctx, requester.UserID)
	if err != nil {
		s.log.Error("Failed to resolve post owner", slog.Int64("owner_id", requester.UserID), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	createdPost, err := s.postRepo.Create(ctx, &model.Post{
		OwnerID: post.OwnerID,
		Title:   post.Title,
		Content: post.Content,
		Image:   post.Image,
	})
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.Int64("post_id", createdPost.ID), slog.Int64("owner_id", createdPost.OwnerID))
	return &model.PostDetailed{Post: createdPost, Owner: owner}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id", slog.String("error", err.Error()), slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	details, err := s.detail(ctx, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *PostService) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error) {
	if filters == nil {
		filters = &model.PostFilters{}
	}

	posts, total, err := s.postRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, posts)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		return nil, 0, err
	}

	s.metrics.IncrementPostOperations("list", true)
	s.log.Debug("Posts listed", slog.Int("count", len(details)), slog.Int("total", total))
	return details, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, requester *model.Requester, id int64, update *model.UpdatePostDTO, partial bool) (result *model.PostDetailed, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
		s.metrics.IncrementPostOperations("update", err == nil)
	}()

	postRepo := tx.PostRepository()

	existingPost, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = permissions.IsOwnerOrReadOnly(requester, permissions.ActionWrite, existingPost.OwnerID); err != nil {
		s.log.Debug("Requester is not owner of post", slog.Int64("post_id", id), slog.Int64("owner_id", existingPost.OwnerID))
		return nil, err
	}

	validation.TrimSpace(update.Title, update.Content)
	if err = s.validateUpdate(update, partial); err != nil {
		s.log.Debug("Post update validation failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	updatedPost, err := postRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	details, err := s.detail(ctx, []*model.Post{updatedPost})
	if err != nil {
		return nil, err
	}

	s.log.Info("Post updated", slog.Int64("post_id", id), slog.Bool("partial", partial))
	return details[0], nil
}

func (s *PostService) DeletePost(ctx context.Context, requester *model.Requester, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
		s.metrics.IncrementPostOperations("delete", err == nil)
	}()

	postRepo := tx.PostRepository()
	commentRepo := tx.CommentRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found when deleting post", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = permissions.IsOwnerOrReadOnly(requester, permissions.ActionDelete, post.OwnerID); err != nil {
		s.log.Debug("Requester is not owner of post", slog.Int64("post_id", id), slog.Int64("owner_id", post.OwnerID))
		return err
	}

	if err = commentRepo.DeleteByPost(ctx, id); err != nil {
		s.log.Error("Failed to delete comments of post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Post deleted", slog.Int64("post_id", id))
	return nil
}

func (s *PostService) validateUpdate(update *model.UpdatePostDTO, partial bool) error {
	vErr := custom_errors.NewValidationError()
	if err := validation.Struct(s.validate, update); err != nil {
		var fieldErrs *custom_errors.ValidationError
		if !errors.As(err, &fieldErrs) {
			return err
		}
		vErr = fieldErrs
	}
	if !partial && update.Title == nil {
		vErr.Add("title", "This field is required.")
	}
	if vErr.Empty() {
		return nil
	}
	return vErr
}

// detail attaches owners and comment counts to posts, preserving order.
func (s *PostService) detail(ctx context.Context, posts []*model.Post) ([]*model.PostDetailed, error) {
	result := make([]*model.PostDetailed, 0, len(posts))
	if len(posts) == 0 {
		return result, nil
	}

	ownerIDs := make([]int64, 0, len(posts))
	postIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		ownerIDs = append(ownerIDs, p.OwnerID)
		postIDs = append(postIDs, p.ID)
	}

	owners, err := s.users.GetUsers(ctx, ownerIDs)
	if err != nil {
		s.log.Error("Failed to resolve post owners", slog.String("error", err.Error()))
		return nil, err
	}

	counts, err := s.commentRepo.CountByPosts(ctx, postIDs)
	if err != nil {
		s.log.Error("Failed to count comments", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	for _, p := range posts {
		result = append(result, &model.PostDetailed{
			Post:          p,
			Owner:         owners[p.OwnerID],
			CommentsCount: counts[p.ID],
		})
	}
	return result, nil
}
