package uow

import (
	"context"

	comment_repository "social-feed-service/internal/domain/ports/output/comment"
	follower_repository "social-feed-service/internal/domain/ports/output/follower"
	post_repository "social-feed-service/internal/domain/ports/output/post"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks/uow --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../../mocks/uow --outpkg mocks --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	CommentRepository() comment_repository.Repository
	FollowerRepository() follower_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
