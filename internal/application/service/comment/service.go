package comment_service

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
	comment_repository "social-feed-service/internal/domain/ports/output/comment"
	"social-feed-service/internal/domain/ports/output/uow"
)

type CommentService struct {
	commentRepo comment_repository.Repository
	uow         uow.UnitOfWork
	users       user_service.Service
	validate    *validator.Validate
	log         ports.Logger
	metrics     ports.MetricsProvider
}

func NewCommentService(
	commentRepo comment_repository.Repository,
	unitOfWork uow.UnitOfWork,
	users user_service.Service,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		uow:         unitOfWork,
		users:       users,
		validate:    validate,
		log:         log,
		metrics:     metrics,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, requester *model.Requester, comment *model.CreateCommentDTO) (result *model.CommentDetailed, err error) {
	defer func() { s.metrics.IncrementCommentOperations("create", err == nil) }()

	if err = permissions.IsAuthenticatedOrReadOnly(requester, permissions.ActionWrite); err != nil {
		s.log.Debug("Anonymous comment creation rejected")
		return nil, err
	}

	comment.OwnerID = requester.UserID
	validation.TrimSpace(&comment.Content)
	if err = validation.Struct(s.validate, comment); err != nil {
		s.log.Debug("Comment validation failed", slog.Int64("owner_id", requester.UserID), slog.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	exists, err := tx.PostRepository().Exists(ctx, comment.PostID)
	if err != nil {
		s.log.Error("Failed to check post existence", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !exists {
		s.log.Debug("Comment references unknown post", slog.Int64("post_id", comment.PostID))
		return nil, custom_errors.NewValidationError().
			Add("post", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", comment.PostID))
	}

	created, err := tx.CommentRepository().Create(ctx, &model.Comment{
		OwnerID: comment.OwnerID,
		PostID:  comment.PostID,
		Content: comment.Content,
	})
	if err != nil {
		s.log.Error("Failed to create comment", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	details, err := s.detail(ctx, []*model.Comment{created})
	if err != nil {
		return nil, err
	}

	s.log.Info("Comment created", slog.Int64("comment_id", created.ID), slog.Int64("post_id", created.PostID))
	return details[0], nil
}

func (s *CommentService) GetCommentByID(ctx context.Context, id int64) (*model.CommentDetailed, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			s.log.Debug("Comment not found", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to get comment by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, []*model.Comment{comment})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *CommentService) ListComments(ctx context.Context, filters *model.CommentFilters) ([]*model.CommentDetailed, int, error) {
	if filters == nil {
		filters = &model.CommentFilters{}
	}

	comments, total, err := s.commentRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list comments", slog.String("error", err.Error()))
		s.metrics.IncrementCommentOperations("list", false)
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	details, err := s.detail(ctx, comments)
	if err != nil {
		s.metrics.IncrementCommentOperations("list", false)
		return nil, 0, err
	}

	s.metrics.IncrementCommentOperations("list", true)
	return details, total, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, requester *model.Requester, id int64, update *model.UpdateCommentDTO, partial bool) (result *model.CommentDetailed, err error) {
	defer func() { s.metrics.IncrementCommentOperations("update", err == nil) }()

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	commentRepo := tx.CommentRepository()

	existing, err := commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			s.log.Debug("Comment not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to get comment for update", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = permissions.IsOwnerOrReadOnly(requester, permissions.ActionWrite, existing.OwnerID); err != nil {
		s.log.Debug("Requester is not owner of comment", slog.Int64("comment_id", id), slog.Int64("owner_id", existing.OwnerID))
		return nil, err
	}

	validation.TrimSpace(update.Content)
	if err = validation.Struct(s.validate, update); err != nil {
		return nil, err
	}
	if !partial && update.Content == nil {
		return nil, custom_errors.NewValidationError().Add("content", "This field is required.")
	}

	updated, err := commentRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return nil, custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to update comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	details, err := s.detail(ctx, []*model.Comment{updated})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *CommentService) DeleteComment(ctx context.Context, requester *model.Requester, id int64) (err error) {
	defer func() { s.metrics.IncrementCommentOperations("delete", err == nil) }()

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	commentRepo := tx.CommentRepository()

	existing, err := commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to get comment for delete", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = permissions.IsOwnerOrReadOnly(requester, permissions.ActionDelete, existing.OwnerID); err != nil {
		s.log.Debug("Requester is not owner of comment", slog.Int64("comment_id", id), slog.Int64("owner_id", existing.OwnerID))
		return err
	}

	if err = commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to delete comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Comment deleted", slog.Int64("comment_id", id), slog.Int64("post_id", existing.PostID))
	return nil
}

func (s *CommentService) rollbackUnlessCommitted(ctx context.Context, tx uow.Transaction, committed *bool) {
	if *committed || tx == nil {
		return
	}
	if err := tx.Rollback(ctx); err != nil {
		if strings.Contains(err.Error(), "tx is closed") {
			s.log.Debug("Transaction already closed during rollback", slog.String("error", err.Error()))
			return
		}
		s.log.Error("Failed to rollback transaction", slog.String("error", err.Error()))
	}
}

func (s *CommentService) detail(ctx context.Context, comments []*model.Comment) ([]*model.CommentDetailed, error) {
	result := make([]*model.CommentDetailed, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	ownerIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		ownerIDs = append(ownerIDs, c.OwnerID)
	}

	owners, err := s.users.GetUsers(ctx, ownerIDs)
	if err != nil {
		s.log.Error("Failed to resolve comment owners", slog.String("error", err.Error()))
		return nil, err
	}

	for _, c := range comments {
		result = append(result, &model.CommentDetailed{Comment: c, Owner: owners[c.OwnerID]})
	}
	return result, nil
}
