package comment_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/outbound/repository/postgres/db"
)

const commentColumns = "id, owner_id, post_id, content, created_at, updated_at"

type CommentRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	c.log.Debug("Creating comment", slog.Int64("owner_id", comment.OwnerID), slog.Int64("post_id", comment.PostID))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	args := pgx.NamedArgs{
		"owner_id":   comment.OwnerID,
		"post_id":    comment.PostID,
		"content":    comment.Content,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO comments (owner_id, post_id, content, created_at, updated_at)
		VALUES (@owner_id, @post_id, @content, @created_at, @updated_at)
		RETURNING ` + commentColumns

	created, err := scanComment(c.db.QueryRow(ctx, query, args))
	if err != nil {
		c.observe("comment_create", start, false)
		c.log.Error("Error creating comment", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_create", start, true)
	return created, nil
}

func (c *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	start := time.Now()

	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = @id`
	comment, err := scanComment(c.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		c.observe("comment_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Comment not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		c.log.Error("Error getting comment by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_get_by_id", start, true)
	return comment, nil
}

func (c *CommentRepository) Update(ctx context.Context, id int64, update *model.UpdateCommentDTO) (*model.Comment, error) {
	start := time.Now()

	setClauses := []string{"updated_at = @updated_at"}
	args := pgx.NamedArgs{
		"id":         id,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}

	query := "UPDATE comments SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + commentColumns

	updated, err := scanComment(c.db.QueryRow(ctx, query, args))
	if err != nil {
		c.observe("comment_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrCommentNotFound
		}
		c.log.Error("Error updating comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_update", start, true)
	return updated, nil
}

func (c *CommentRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	result, err := c.db.Exec(ctx, `DELETE FROM comments WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		c.observe("comment_delete", start, false)
		c.log.Error("Error deleting comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		c.observe("comment_delete", start, false)
		return custom_errors.ErrCommentNotFound
	}

	c.observe("comment_delete", start, true)
	return nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	start := time.Now()

	result, err := c.db.Exec(ctx, `DELETE FROM comments WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		c.observe("comment_delete_by_post", start, false)
		c.log.Error("Error deleting comments by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_delete_by_post", start, true)
	c.log.Debug("Deleted comments by post", slog.Int64("post_id", postID), slog.Int64("deleted", result.RowsAffected()))
	return nil
}

func (c *CommentRepository) List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int, error) {
	start := time.Now()
	c.log.Debug("Listing comments with filters",
		slog.Any("post_id", filters.PostID),
		slog.Any("owner_id", filters.OwnerID),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	args := pgx.NamedArgs{}
	whereClauses := []string{}

	if filters.PostID != nil {
		whereClauses = append(whereClauses, "post_id = @post_id")
		args["post_id"] = *filters.PostID
	}
	if filters.OwnerID != nil {
		whereClauses = append(whereClauses, "owner_id = @owner_id")
		args["owner_id"] = *filters.OwnerID
	}

	where := ""
	if len(whereClauses) > 0 {
		where = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	if err := c.db.QueryRow(ctx, "SELECT COUNT(*) FROM comments"+where, args).Scan(&total); err != nil {
		c.observe("comment_list", start, false)
		c.log.Error("Error counting comments", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	query := "SELECT " + commentColumns + " FROM comments" + where + " ORDER BY created_at DESC, id DESC"
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.observe("comment_list", start, false)
		c.log.Error("Error listing comments", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			c.observe("comment_list", start, false)
			c.log.Error("Error scanning comment during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		c.observe("comment_list", start, false)
		c.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_list", start, true)
	return comments, total, nil
}

func (c *CommentRepository) CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	start := time.Now()
	rows, err := c.db.Query(ctx,
		`SELECT post_id, COUNT(*) FROM comments WHERE post_id = ANY(@post_ids) GROUP BY post_id`,
		pgx.NamedArgs{"post_ids": postIDs})
	if err != nil {
		c.observe("comment_count_by_posts", start, false)
		c.log.Error("Error counting comments by posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var postID int64
		var count int
		if err := rows.Scan(&postID, &count); err != nil {
			c.observe("comment_count_by_posts", start, false)
			c.log.Error("Error scanning comment count", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		counts[postID] = count
	}
	if err := rows.Err(); err != nil {
		c.observe("comment_count_by_posts", start, false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_count_by_posts", start, true)
	return counts, nil
}

func (c *CommentRepository) observe(queryType string, start time.Time, success bool) {
	c.metrics.IncrementDatabaseQueries(queryType, success)
	c.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment
	err := row.Scan(
		&comment.ID,
		&comment.OwnerID,
		&comment.PostID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
