package post_http

import (
	"github.com/gofiber/fiber/v2"

	post_service "social-feed-service/internal/domain/ports/input/post"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type PostAPI struct {
	create *CreatePostHandler
	get    *GetPostHandler
	list   *ListPostsHandler
	update *UpdatePostHandler
	delete *DeletePostHandler
}

func NewPostAPI(postService post_service.Service, paging request.Paging, log ports.Logger) *PostAPI {
	return &PostAPI{
		create: NewCreatePostHandler(postService, log),
		get:    NewGetPostHandler(postService, log),
		list:   NewListPostsHandler(postService, paging, log),
		update: NewUpdatePostHandler(postService, log),
		delete: NewDeletePostHandler(postService, log),
	}
}

func (a *PostAPI) Register(r fiber.Router) {
	r.Get("/posts", a.list.ListPosts)
	r.Post("/posts", a.create.CreatePost)
	r.Put("/posts", response.MethodNotAllowed)
	r.Patch("/posts", response.MethodNotAllowed)
	r.Delete("/posts", response.MethodNotAllowed)

	r.Get("/posts/:id<int>", a.get.GetPost)
	r.Put("/posts/:id<int>", a.update.UpdatePost)
	r.Patch("/posts/:id<int>", a.update.UpdatePost)
	r.Delete("/posts/:id<int>", a.delete.DeletePost)
	r.Post("/posts/:id<int>", response.MethodNotAllowed)
}
