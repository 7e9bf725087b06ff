package follower_http

import (
	"time"

	model "social-feed-service/internal/domain/models"
)

type createFollowerRequest struct {
	Followed *int64 `json:"followed" form:"followed"`
}

type FollowerResponse struct {
	ID           int64     `json:"id"`
	Owner        string    `json:"owner"`
	OwnerID      int64     `json:"owner_id"`
	Followed     int64     `json:"followed"`
	FollowedName string    `json:"followed_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func newFollowerResponse(f *model.FollowerDetailed) FollowerResponse {
	var resp FollowerResponse
	if f.Follower != nil {
		resp.ID = f.Follower.ID
		resp.OwnerID = f.Follower.OwnerID
		resp.Followed = f.Follower.FollowedID
		resp.CreatedAt = f.Follower.CreatedAt.Time
	}
	if f.Owner != nil {
		resp.Owner = f.Owner.Username
	}
	if f.Followed != nil {
		resp.FollowedName = f.Followed.Username
	}
	return resp
}
