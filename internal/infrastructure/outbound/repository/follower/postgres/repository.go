package follower_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/outbound/repository/postgres/db"
)

const followerColumns = "id, owner_id, followed_id, created_at"

type FollowerRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewFollowerRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *FollowerRepository {
	return &FollowerRepository{db: db, log: log, metrics: metrics}
}

func (f *FollowerRepository) Create(ctx context.Context, follower *model.Follower) (*model.Follower, error) {
	start := time.Now()
	f.log.Debug("Creating follower",
		slog.Int64("owner_id", follower.OwnerID),
		slog.Int64("followed_id", follower.FollowedID))

	args := pgx.NamedArgs{
		"owner_id":    follower.OwnerID,
		"followed_id": follower.FollowedID,
		"created_at":  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `
		INSERT INTO followers (owner_id, followed_id, created_at)
		VALUES (@owner_id, @followed_id, @created_at)
		RETURNING ` + followerColumns

	created, err := scanFollower(f.db.QueryRow(ctx, query, args))
	if err != nil {
		f.observe("follower_create", start, false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.UniqueViolation {
			f.log.Debug("Follower pair already exists",
				slog.Int64("owner_id", follower.OwnerID),
				slog.Int64("followed_id", follower.FollowedID))
			return nil, custom_errors.ErrDuplicateFollow
		}
		f.log.Error("Error creating follower", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	f.observe("follower_create", start, true)
	return created, nil
}

func (f *FollowerRepository) GetByID(ctx context.Context, id int64) (*model.Follower, error) {
	start := time.Now()

	query := `SELECT ` + followerColumns + ` FROM followers WHERE id = @id`
	follower, err := scanFollower(f.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		f.observe("follower_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			f.log.Debug("Follower not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrFollowerNotFound
		}
		f.log.Error("Error getting follower by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	f.observe("follower_get_by_id", start, true)
	return follower, nil
}

func (f *FollowerRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	result, err := f.db.Exec(ctx, `DELETE FROM followers WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		f.observe("follower_delete", start, false)
		f.log.Error("Error deleting follower", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		f.observe("follower_delete", start, false)
		return custom_errors.ErrFollowerNotFound
	}

	f.observe("follower_delete", start, true)
	return nil
}

func (f *FollowerRepository) List(ctx context.Context, filters model.FollowerFilters) ([]*model.Follower, int, error) {
	start := time.Now()
	f.log.Debug("Listing followers with filters",
		slog.Any("owner_id", filters.OwnerID),
		slog.Any("followed_id", filters.FollowedID),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	args := pgx.NamedArgs{}
	whereClauses := []string{}

	if filters.OwnerID != nil {
		whereClauses = append(whereClauses, "owner_id = @owner_id")
		args["owner_id"] = *filters.OwnerID
	}
	if filters.FollowedID != nil {
		whereClauses = append(whereClauses, "followed_id = @followed_id")
		args["followed_id"] = *filters.FollowedID
	}

	where := ""
	if len(whereClauses) > 0 {
		where = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	if err := f.db.QueryRow(ctx, "SELECT COUNT(*) FROM followers"+where, args).Scan(&total); err != nil {
		f.observe("follower_list", start, false)
		f.log.Error("Error counting followers", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	query := "SELECT " + followerColumns + " FROM followers" + where + " ORDER BY created_at DESC, id DESC"
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := f.db.Query(ctx, query, args)
	if err != nil {
		f.observe("follower_list", start, false)
		f.log.Error("Error listing followers", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	followers := make([]*model.Follower, 0)
	for rows.Next() {
		follower, err := scanFollower(rows)
		if err != nil {
			f.observe("follower_list", start, false)
			f.log.Error("Error scanning follower during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		followers = append(followers, follower)
	}
	if err = rows.Err(); err != nil {
		f.observe("follower_list", start, false)
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	f.observe("follower_list", start, true)
	return followers, total, nil
}

func (f *FollowerRepository) observe(queryType string, start time.Time, success bool) {
	f.metrics.IncrementDatabaseQueries(queryType, success)
	f.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanFollower(row pgx.Row) (*model.Follower, error) {
	var follower model.Follower
	if err := row.Scan(&follower.ID, &follower.OwnerID, &follower.FollowedID, &follower.CreatedAt); err != nil {
		return nil, err
	}
	return &follower, nil
}
