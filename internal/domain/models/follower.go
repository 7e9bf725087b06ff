package model

import "github.com/jackc/pgx/v5/pgtype"

// Follower is a directed edge: OwnerID follows FollowedID.
type Follower struct {
	ID         int64              `json:"id"`
	OwnerID    int64              `json:"owner_id"`
	FollowedID int64              `json:"followed_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type FollowerDetailed struct {
	Follower *Follower `json:"follower,omitempty"`
	Owner    *User     `json:"owner,omitempty"`
	Followed *User     `json:"followed,omitempty"`
}

type CreateFollowerDTO struct {
	OwnerID    int64 `json:"-"`
	FollowedID int64 `json:"followed" validate:"required,gt=0"`
}

type FollowerFilters struct {
	OwnerID    *int64
	FollowedID *int64
	Limit      *int
	Offset     *int
}
