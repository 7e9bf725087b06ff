// Command seed creates users and prints a bearer token for each. Accounts are owned by an
// external identity system in production; this is for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/infrastructure/auth"
	"social-feed-service/internal/infrastructure/config"
	"social-feed-service/internal/infrastructure/logger"
	prometheus_metrics "social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	"social-feed-service/internal/infrastructure/outbound/repository/postgres"
	user_postgres "social-feed-service/internal/infrastructure/outbound/repository/user/postgres"
)

func main() {
	flag.Parse()
	usernames := flag.Args()
	if len(usernames) == 0 {
		fmt.Fprintln(os.Stderr, "usage: seed <username>...")
		os.Exit(2)
	}

	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := postgres.Migrate(cfg.Database.DSN(), cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider(prometheus.NewRegistry())
	users := user_postgres.NewUserRepository(pool, log, metrics)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	for _, name := range usernames {
		user, err := users.GetByUsername(ctx, name)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			user, err = users.Create(ctx, name)
		}
		if err != nil {
			log.Error("Failed to seed user", slog.String("username", name), slog.String("error", err.Error()))
			os.Exit(1)
		}

		token, err := tokens.Issue(user.ID, user.Username)
		if err != nil {
			log.Error("Failed to issue token", slog.String("username", name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("%d\t%s\t%s\n", user.ID, user.Username, token)
	}
}
