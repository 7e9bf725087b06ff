package memory

import (
	"context"

	comment_repository "social-feed-service/internal/domain/ports/output/comment"
	follower_repository "social-feed-service/internal/domain/ports/output/follower"
	post_repository "social-feed-service/internal/domain/ports/output/post"
	"social-feed-service/internal/domain/ports/output/uow"
)

// UnitOfWork hands out the shared in-memory repositories. Rollback does not undo writes.
type UnitOfWork struct {
	posts     post_repository.Repository
	comments  comment_repository.Repository
	followers follower_repository.Repository
}

func NewUnitOfWork(
	posts post_repository.Repository,
	comments comment_repository.Repository,
	followers follower_repository.Repository,
) *UnitOfWork {
	return &UnitOfWork{posts: posts, comments: comments, followers: followers}
}

func (u *UnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	return &transaction{uow: u}, nil
}

type transaction struct {
	uow *UnitOfWork
}

func (t *transaction) PostRepository() post_repository.Repository         { return t.uow.posts }
func (t *transaction) CommentRepository() comment_repository.Repository   { return t.uow.comments }
func (t *transaction) FollowerRepository() follower_repository.Repository { return t.uow.followers }
func (t *transaction) Commit(ctx context.Context) error                   { return nil }
func (t *transaction) Rollback(ctx context.Context) error                 { return nil }
