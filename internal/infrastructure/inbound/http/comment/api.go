package comment_http

import (
	"github.com/gofiber/fiber/v2"

	comment_service "social-feed-service/internal/domain/ports/input/comment"
	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

type CommentAPI struct {
	create *CreateCommentHandler
	get    *GetCommentHandler
	list   *ListCommentsHandler
	update *UpdateCommentHandler
	delete *DeleteCommentHandler
}

func NewCommentAPI(commentService comment_service.Service, paging request.Paging, log ports.Logger) *CommentAPI {
	return &CommentAPI{
		create: NewCreateCommentHandler(commentService, log),
		get:    NewGetCommentHandler(commentService, log),
		list:   NewListCommentsHandler(commentService, paging, log),
		update: NewUpdateCommentHandler(commentService, log),
		delete: NewDeleteCommentHandler(commentService, log),
	}
}

func (a *CommentAPI) Register(r fiber.Router) {
	r.Get("/comments", a.list.ListComments)
	r.Post("/comments", a.create.CreateComment)
	r.Put("/comments", response.MethodNotAllowed)
	r.Patch("/comments", response.MethodNotAllowed)
	r.Delete("/comments", response.MethodNotAllowed)

	r.Get("/comments/:id<int>", a.get.GetComment)
	r.Put("/comments/:id<int>", a.update.UpdateComment)
	r.Patch("/comments/:id<int>", a.update.UpdateComment)
	r.Delete("/comments/:id<int>", a.delete.DeleteComment)
	r.Post("/comments/:id<int>", response.MethodNotAllowed)
}
