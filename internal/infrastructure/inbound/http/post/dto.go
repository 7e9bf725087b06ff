package post_http

import (
	"time"

	model "social-feed-service/internal/domain/models"
)

type postRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
	Image   *string `json:"image" form:"image"`
}

type PostResponse struct {
	ID            int64     `json:"id"`
	Owner         string    `json:"owner"`
	OwnerID       int64     `json:"owner_id"`
	IsOwner       bool      `json:"is_owner"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Image         string    `json:"image"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newPostResponse(p *model.PostDetailed, requester *model.Requester) PostResponse {
	resp := PostResponse{CommentsCount: p.CommentsCount}
	if p.Post != nil {
		resp.ID = p.Post.ID
		resp.OwnerID = p.Post.OwnerID
		resp.IsOwner = requester.Owns(p.Post.OwnerID)
		resp.Title = p.Post.Title
		resp.Content = p.Post.Content
		resp.Image = p.Post.Image
		resp.CreatedAt = p.Post.CreatedAt.Time
		resp.UpdatedAt = p.Post.UpdatedAt.Time
	}
	if p.Owner != nil {
		resp.Owner = p.Owner.Username
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
