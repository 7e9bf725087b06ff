package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"social-feed-service/internal/custom_errors"
	ports "social-feed-service/internal/domain/ports/output"
)

// entityCache stores JSON values of T under "<prefix><id>".
type entityCache[T any] struct {
	client *Client
	log    ports.Logger
	name   string
	prefix string
	ttl    time.Duration
}

func (e *entityCache[T]) key(id int64) string {
	return e.prefix + strconv.FormatInt(id, 10)
}

func (e *entityCache[T]) get(ctx context.Context, id int64) (*T, error) {
	var value T
	if err := e.client.Get(ctx, e.key(id), &value); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			e.log.Debug(e.name+" cache miss", slog.Int64("id", id))
			return nil, custom_errors.ErrCacheMiss
		}
		e.log.Error("Failed to get "+e.name+" from cache",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get %s from cache: %w", e.name, err)
	}

	e.log.Debug(e.name+" cache hit", slog.Int64("id", id))
	return &value, nil
}

func (e *entityCache[T]) set(ctx context.Context, id int64, value *T) error {
	if err := e.client.Set(ctx, e.key(id), value, e.ttl); err != nil {
		e.log.Error("Failed to set "+e.name+" cache",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set %s cache: %w", e.name, err)
	}

	e.log.Debug(e.name+" cached successfully",
		slog.Int64("id", id),
		slog.Duration("ttl", e.ttl))
	return nil
}

func (e *entityCache[T]) delete(ctx context.Context, id int64) error {
	if err := e.client.Delete(ctx, e.key(id)); err != nil {
		e.log.Error("Failed to delete "+e.name+" from cache",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete %s from cache: %w", e.name, err)
	}
	return nil
}
