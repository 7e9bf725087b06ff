package follower_http

import (
	"github.com/gofiber/fiber/v2"

	follower_service "social-feed-service/internal/domain/ports/input/follower"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type FollowerAPI struct {
	create *CreateFollowerHandler
	get    *GetFollowerHandler
	list   *ListFollowersHandler
	delete *DeleteFollowerHandler
}

func NewFollowerAPI(followerService follower_service.Service, paging request.Paging, log ports.Logger) *FollowerAPI {
	return &FollowerAPI{
		create: NewCreateFollowerHandler(followerService, log),
		get:    NewGetFollowerHandler(followerService, log),
		list:   NewListFollowersHandler(followerService, paging, log),
		delete: NewDeleteFollowerHandler(followerService, log),
	}
}

// Register mounts the follower routes. Edges are immutable, so PUT and PATCH answer 405.
func (a *FollowerAPI) Register(r fiber.Router) {
	r.Get("/follower", a.list.ListFollowers)
	r.Post("/follower", a.create.CreateFollower)
	r.Put("/follower", response.MethodNotAllowed)
	r.Patch("/follower", response.MethodNotAllowed)
	r.Delete("/follower", response.MethodNotAllowed)

	r.Get("/follower/:id<int>", a.get.GetFollower)
	r.Delete("/follower/:id<int>", a.delete.DeleteFollower)
	r.Put("/follower/:id<int>", response.MethodNotAllowed)
	r.Patch("/follower/:id<int>", response.MethodNotAllowed)
	r.Post("/follower/:id<int>", response.MethodNotAllowed)
}
