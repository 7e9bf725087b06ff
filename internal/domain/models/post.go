package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64              `json:"id"`
	OwnerID   int64              `json:"owner_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Image     string             `json:"image"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// PostDetailed is the requester-independent view of a post. It is what the post cache stores.
type PostDetailed struct {
	Post          *Post `json:"post,omitempty"`
	Owner         *User `json:"owner,omitempty"`
	CommentsCount int   `json:"comments_count"`
}

type CreatePostDTO struct {
	OwnerID int64  `json:"-"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

// UpdatePostDTO holds the fields to replace. Nil fields are left untouched.
type UpdatePostDTO struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content"`
	Image   *string `json:"image" validate:"omitempty,max=255"`
}

type PostFilters struct {
	OwnerID *int64
	Limit   *int
	Offset  *int
}
