package delivery_http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	comment_service "social-feed-service/internal/domain/ports/input/comment"
	follower_service "social-feed-service/internal/domain/ports/input/follower"
	post_service "social-feed-service/internal/domain/ports/input/post"
	ports "social-feed-service/internal/domain/ports/output"
	comment_http "social-feed-service/internal/infrastructure/inbound/http/comment"
	follower_http "social-feed-service/internal/infrastructure/inbound/http/follower"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	post_http "social-feed-service/internal/infrastructure/inbound/http/post"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type RouterDeps struct {
	PostService     post_service.Service
	CommentService  comment_service.Service
	FollowerService follower_service.Service
	Tokens          middleware.TokenParser
	Users           middleware.UserGetter
	Paging          request.Paging
	Metrics         ports.MetricsProvider
	Log             ports.Logger
	Config          fiber.Config
}

func NewRouter(deps RouterDeps) *fiber.App {
	cfg := deps.Config
	cfg.ErrorHandler = response.ErrorHandler(deps.Log)
	cfg.StrictRouting = false
	cfg.DisableStartupMessage = true

	app := fiber.New(cfg)

	app.Use(recover.New())
	app.Use(middleware.Tracing())
	app.Use(middleware.AccessLog(deps.Log))
	if deps.Metrics != nil {
		app.Use(middleware.Metrics(deps.Metrics))
	}
	app.Use(middleware.Authenticate(deps.Tokens, deps.Users, deps.Log))

	post_http.NewPostAPI(deps.PostService, deps.Paging, deps.Log).Register(app)
	comment_http.NewCommentAPI(deps.CommentService, deps.Paging, deps.Log).Register(app)
	follower_http.NewFollowerAPI(deps.FollowerService, deps.Paging, deps.Log).Register(app)

	return app
}
