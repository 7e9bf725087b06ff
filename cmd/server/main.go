package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	comment_service "social-feed-service/internal/application/service/comment"
	follower_service "social-feed-service/internal/application/service/follower"
	post_service "social-feed-service/internal/application/service/post"
	user_service "social-feed-service/internal/application/service/user"
	"social-feed-service/internal/application/validation"
	comment_port "social-feed-service/internal/domain/ports/input/comment"
	post_port "social-feed-service/internal/domain/ports/input/post"
	user_port "social-feed-service/internal/domain/ports/input/user"
	"social-feed-service/internal/infrastructure/auth"
	"social-feed-service/internal/infrastructure/config"
	delivery_grpc "social-feed-service/internal/infrastructure/inbound/grpc"
	delivery_http "social-feed-service/internal/infrastructure/inbound/http"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	metrics_server "social-feed-service/internal/infrastructure/inbound/metrics"
	"social-feed-service/internal/infrastructure/logger"
	redis_cache "social-feed-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	comment_postgres "social-feed-service/internal/infrastructure/outbound/repository/comment/postgres"
	follower_postgres "social-feed-service/internal/infrastructure/outbound/repository/follower/postgres"
	post_postgres "social-feed-service/internal/infrastructure/outbound/repository/post/postgres"
	"social-feed-service/internal/infrastructure/outbound/repository/postgres"
	user_postgres "social-feed-service/internal/infrastructure/outbound/repository/user/postgres"
	"social-feed-service/internal/infrastructure/telemetry"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Error("Failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.Database.DSN(), cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := prometheus_metrics.NewPrometheusMetricsProvider(registry)

	validate := validation.New()
	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	commentRepo := comment_postgres.NewCommentRepository(pool, log, metrics)
	followerRepo := follower_postgres.NewFollowerRepository(pool, log, metrics)

	var postCache *redis_cache.PostCache
	var userCache *redis_cache.UserCache
	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log, metrics)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		postCache = redis_cache.NewPostCache(redisClient, log)
		userCache = redis_cache.NewUserCache(redisClient, log)
	}

	var users user_port.Service = user_service.NewUserService(userRepo, log)
	if userCache != nil {
		users = user_service.NewUserServiceCacheDecorator(users, userCache, log, metrics)
	}

	var posts post_port.Service = post_service.NewPostService(postRepo, commentRepo, unitOfWork, users, validate, log, metrics)
	var comments comment_port.Service = comment_service.NewCommentService(commentRepo, unitOfWork, users, validate, log, metrics)
	if postCache != nil {
		posts = post_service.NewPostServiceCacheDecorator(posts, postCache, log, metrics)
		comments = comment_service.NewCommentServiceCacheDecorator(comments, postCache, log, metrics)
	}
	followers := follower_service.NewFollowerService(followerRepo, unitOfWork, users, validate, log, metrics)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	app := delivery_http.NewRouter(delivery_http.RouterDeps{
		PostService:     posts,
		CommentService:  comments,
		FollowerService: followers,
		Tokens:          tokens,
		Users:           users,
		Paging: request.Paging{
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
		},
		Metrics: metrics,
		Log:     log,
		Config: fiber.Config{
			AppName:      "social-feed-service",
			ReadTimeout:  cfg.HTTPServer.ReadTimeout,
			WriteTimeout: cfg.HTTPServer.WriteTimeout,
			IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		},
	})

	httpServer := delivery_http.NewServer(app, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	grpcServer := delivery_grpc.NewServer(cfg.GRPCServer.Address, cfg.GRPCServer.Port, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, registry, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	httpDone := make(chan bool, 1)
	grpcDone := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		httpDone <- true
	}()

	go func() {
		if err := grpcServer.Run(); err != nil {
			log.Error("gRPC server error", slog.String("error", err.Error()))
		}
		grpcDone <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	metrics.SetServiceHealth(true)

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)
	grpcServer.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := grpcServer.Shutdown(); err != nil {
		log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Tracing shutdown error", slog.String("error", err.Error()))
	}

	<-httpDone
	<-grpcDone
	<-metricsDone

	log.Info("Server exited")
}
