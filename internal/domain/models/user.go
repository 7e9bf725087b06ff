package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID        int64              `json:"id"`
	Username  string             `json:"username"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

// Requester is the authenticated identity behind a request. A nil *Requester is an anonymous caller.
type Requester struct {
	UserID   int64
	Username string
}

func (r *Requester) IsAuthenticated() bool {
	return r != nil && r.UserID > 0
}

func (r *Requester) Owns(ownerID int64) bool {
	return r.IsAuthenticated() && r.UserID == ownerID
}
