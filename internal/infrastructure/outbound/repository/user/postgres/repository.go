package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/outbound/repository/postgres/db"
)

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (u *UserRepository) Create(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()

	args := pgx.NamedArgs{
		"username":   username,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `INSERT INTO users (username, created_at) VALUES (@username, @created_at)
		RETURNING id, username, created_at`

	var user model.User
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		u.observe("user_create", start, false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.UniqueViolation {
			return nil, custom_errors.NewValidationError().Add("username", "A user with that username already exists.")
		}
		u.log.Error("Error creating user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.observe("user_create", start, true)
	return &user, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.getOne(ctx, "user_get_by_id", `SELECT id, username, created_at FROM users WHERE id = @value`, id)
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.getOne(ctx, "user_get_by_username", `SELECT id, username, created_at FROM users WHERE username = @value`, username)
}

func (u *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	start := time.Now()
	rows, err := u.db.Query(ctx,
		`SELECT id, username, created_at FROM users WHERE id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": ids})
	if err != nil {
		u.observe("user_get_by_ids", start, false)
		u.log.Error("Error getting users by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			u.observe("user_get_by_ids", start, false)
			return nil, custom_errors.ErrDatabaseQuery
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		u.observe("user_get_by_ids", start, false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.observe("user_get_by_ids", start, true)
	return users, nil
}

func (u *UserRepository) getOne(ctx context.Context, queryType, query string, value any) (*model.User, error) {
	start := time.Now()

	var user model.User
	err := u.db.QueryRow(ctx, query, pgx.NamedArgs{"value": value}).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		u.observe(queryType, start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found", slog.String("query", queryType), slog.Any("value", value))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user", slog.String("query", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.observe(queryType, start, true)
	return &user, nil
}

func (u *UserRepository) observe(queryType string, start time.Time, success bool) {
	u.metrics.IncrementDatabaseQueries(queryType, success)
	u.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}
