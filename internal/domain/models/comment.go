package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID        int64              `json:"id"`
	OwnerID   int64              `json:"owner_id"`
	PostID    int64              `json:"post_id"`
	Content   string             `json:"content"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type CommentDetailed struct {
	Comment *Comment `json:"comment,omitempty"`
	Owner   *User    `json:"owner,omitempty"`
}

type CreateCommentDTO struct {
	OwnerID int64  `json:"-"`
	PostID  int64  `json:"post" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentDTO has no post field: a comment never moves to another post.
type UpdateCommentDTO struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type CommentFilters struct {
	PostID  *int64
	OwnerID *int64
	Limit   *int
	Offset  *int
}
