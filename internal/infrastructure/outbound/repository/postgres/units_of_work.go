package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ports "social-feed-service/internal/domain/ports/output"
	comment_repository "social-feed-service/internal/domain/ports/output/comment"
	follower_repository "social-feed-service/internal/domain/ports/output/follower"
	post_repository "social-feed-service/internal/domain/ports/output/post"
	"social-feed-service/internal/domain/ports/output/uow"
	comment_repository_postgres "social-feed-service/internal/infrastructure/outbound/repository/comment/postgres"
	follower_repository_postgres "social-feed-service/internal/infrastructure/outbound/repository/follower/postgres"
	post_repository_postgres "social-feed-service/internal/infrastructure/outbound/repository/post/postgres"
)

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger, metrics ports.MetricsProvider) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log, metrics: u.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) CommentRepository() comment_repository.Repository {
	return comment_repository_postgres.NewCommentRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) FollowerRepository() follower_repository.Repository {
	return follower_repository_postgres.NewFollowerRepository(t.tx, t.log, t.metrics)
}
