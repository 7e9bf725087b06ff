package comment_http

import (
	"time"

	model "social-feed-service/internal/domain/models"
)

type createCommentRequest struct {
	Post    *int64  `json:"post" form:"post"`
	Content *string `json:"content" form:"content"`
}

// updateCommentRequest has no post field; a supplied one is ignored.
type updateCommentRequest struct {
	Content *string `json:"content" form:"content"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"`
	OwnerID   int64     `json:"owner_id"`
	IsOwner   bool      `json:"is_owner"`
	Post      int64     `json:"post"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCommentResponse(c *model.CommentDetailed, requester *model.Requester) CommentResponse {
	var resp CommentResponse
	if c.Comment != nil {
		resp.ID = c.Comment.ID
		resp.OwnerID = c.Comment.OwnerID
		resp.IsOwner = requester.Owns(c.Comment.OwnerID)
		resp.Post = c.Comment.PostID
		resp.Content = c.Comment.Content
		resp.CreatedAt = c.Comment.CreatedAt.Time
		resp.UpdatedAt = c.Comment.UpdatedAt.Time
	}
	if c.Owner != nil {
		resp.Owner = c.Owner.Username
	}
	return resp
}
