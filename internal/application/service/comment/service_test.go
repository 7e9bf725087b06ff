package comment_service

import (
	"context"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user_service "social-feed-service/internal/application/service/user"
	"social-feed-service/internal/application/validation"
	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/infrastructure/logger"
	"social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	comment_memory "social-feed-service/internal/infrastructure/outbound/repository/comment/memory"
	follower_memory "social-feed-service/internal/infrastructure/outbound/repository/follower/memory"
	uow_memory "social-feed-service/internal/infrastructure/outbound/repository/memory"
	post_memory "social-feed-service/internal/infrastructure/outbound/repository/post/memory"
	user_memory "social-feed-service/internal/infrastructure/outbound/repository/user/memory"
)

type fixture struct {
	service  *CommentService
	comments *comment_memory.CommentRepository
	adam     *model.Requester
	brian    *model.Requester
	postID   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	log := logger.New("test")

	users := user_memory.NewUserRepository(log)
	adam, err := users.Create(ctx, "adam")
	require.NoError(t, err)
	brian, err := users.Create(ctx, "brian")
	require.NoError(t, err)

	posts := post_memory.NewPostRepository(log)
	post, err := posts.Create(ctx, &model.Post{OwnerID: adam.ID, Title: "a title"})
	require.NoError(t, err)

	comments := comment_memory.NewCommentRepository(log)
	unitOfWork := uow_memory.NewUnitOfWork(posts, comments, follower_memory.NewFollowerRepository(log))

	return &fixture{
		service: NewCommentService(
			comments,
			unitOfWork,
			user_service.NewUserService(users, log),
			validation.New(),
			log,
			prometheus.NewPrometheusMetricsProvider(prom.NewRegistry()),
		),
		comments: comments,
		adam:     &model.Requester{UserID: adam.ID, Username: adam.Username},
		brian:    &model.Requester{UserID: brian.ID, Username: brian.Username},
		postID:   post.ID,
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	tests := []struct {
		name      string
		requester func(f *fixture) *model.Requester
		input     func(f *fixture) *model.CreateCommentDTO
		wantErr   error
		wantField string
	}{
		{
			name:      "Anonymous is rejected",
			requester: func(f *fixture) *model.Requester { return nil },
			input:     func(f *fixture) *model.CreateCommentDTO { return &model.CreateCommentDTO{PostID: f.postID, Content: "hi"} },
			wantErr:   custom_errors.ErrNotAuthenticated,
		},
		{
			name:      "Unknown post",
			requester: func(f *fixture) *model.Requester { return f.brian },
			input:     func(f *fixture) *model.CreateCommentDTO { return &model.CreateCommentDTO{PostID: 99, Content: "hi"} },
			wantErr:   custom_errors.ErrInvalidInput,
			wantField: "post",
		},
		{
			name:      "Missing content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			input:     func(f *fixture) *model.CreateCommentDTO { return &model.CreateCommentDTO{PostID: f.postID} },
			wantErr:   custom_errors.ErrInvalidInput,
			wantField: "content",
		},
		{
			name:      "Whitespace-only content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			input:     func(f *fixture) *model.CreateCommentDTO { return &model.CreateCommentDTO{PostID: f.postID, Content: "  \n "} },
			wantErr:   custom_errors.ErrInvalidInput,
			wantField: "content",
		},
		{
			name:      "Success",
			requester: func(f *fixture) *model.Requester { return f.brian },
			input:     func(f *fixture) *model.CreateCommentDTO { return &model.CreateCommentDTO{PostID: f.postID, Content: " hi "} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			got, err := f.service.CreateComment(context.Background(), tt.requester(f), tt.input(f))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				if tt.wantField != "" {
					var verr *custom_errors.ValidationError
					require.ErrorAs(t, err, &verr)
					assert.Contains(t, verr.Fields, tt.wantField)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, f.brian.UserID, got.Comment.OwnerID)
			assert.Equal(t, f.postID, got.Comment.PostID)
			assert.Equal(t, "hi", got.Comment.Content)
			assert.Equal(t, "brian", got.Owner.Username)
		})
	}
}

func TestCommentService_UnknownPostMessage(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateComment(context.Background(), f.adam, &model.CreateCommentDTO{PostID: 42, Content: "hi"})

	var verr *custom_errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{`Invalid pk "42" - object does not exist.`}, verr.Fields["post"])
}

func TestCommentService_ListComments_FilterByPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.service.CreateComment(ctx, f.adam, &model.CreateCommentDTO{PostID: f.postID, Content: "first"})
	require.NoError(t, err)
	_, err = f.service.CreateComment(ctx, f.brian, &model.CreateCommentDTO{PostID: f.postID, Content: "second"})
	require.NoError(t, err)

	_, err = f.comments.Create(ctx, &model.Comment{OwnerID: f.adam.UserID, PostID: f.postID + 1, Content: "elsewhere"})
	require.NoError(t, err)

	postID := f.postID
	got, total, err := f.service.ListComments(ctx, &model.CommentFilters{PostID: &postID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, f.postID, c.Comment.PostID)
	}

	owner := f.adam.UserID
	got, total, err = f.service.ListComments(ctx, &model.CommentFilters{OwnerID: &owner})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Contains(t, []int64{got[0].Comment.ID, got[1].Comment.ID}, other.Comment.ID)

	got, total, err = f.service.ListComments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, got, 3)
}

func TestCommentService_UpdateComment(t *testing.T) {
	content := "edited"
	empty := ""
	spaces := "   "

	tests := []struct {
		name      string
		requester func(f *fixture) *model.Requester
		id        int64
		update    *model.UpdateCommentDTO
		partial   bool
		wantErr   error
		want      string
	}{
		{
			name:      "Not found comes before ownership",
			requester: func(f *fixture) *model.Requester { return nil },
			id:        99,
			update:    &model.UpdateCommentDTO{Content: &content},
			wantErr:   custom_errors.ErrCommentNotFound,
		},
		{
			name:      "Anonymous",
			requester: func(f *fixture) *model.Requester { return nil },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &content},
			wantErr:   custom_errors.ErrNotAuthenticated,
		},
		{
			name:      "Non-owner",
			requester: func(f *fixture) *model.Requester { return f.adam },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &content},
			wantErr:   custom_errors.ErrForbidden,
		},
		{
			name:      "Ownership comes before validation",
			requester: func(f *fixture) *model.Requester { return f.adam },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &empty},
			wantErr:   custom_errors.ErrForbidden,
		},
		{
			name:      "Full update requires content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			id:        1,
			update:    &model.UpdateCommentDTO{},
			wantErr:   custom_errors.ErrInvalidInput,
		},
		{
			name:      "Blank content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &empty},
			partial:   true,
			wantErr:   custom_errors.ErrInvalidInput,
		},
		{
			name:      "Whitespace-only content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &spaces},
			partial:   true,
			wantErr:   custom_errors.ErrInvalidInput,
		},
		{
			name:      "Empty partial update keeps content",
			requester: func(f *fixture) *model.Requester { return f.brian },
			id:        1,
			update:    &model.UpdateCommentDTO{},
			partial:   true,
			want:      "original",
		},
		{
			name:      "Owner updates",
			requester: func(f *fixture) *model.Requester { return f.brian },
			id:        1,
			update:    &model.UpdateCommentDTO{Content: &content},
			want:      "edited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.service.CreateComment(ctx, f.brian, &model.CreateCommentDTO{PostID: f.postID, Content: "original"})
			require.NoError(t, err)

			got, err := f.service.UpdateComment(ctx, tt.requester(f), tt.id, tt.update, tt.partial)

			stored, getErr := f.comments.GetByID(ctx, 1)
			require.NoError(t, getErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "original", stored.Content)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Comment.Content)
			assert.Equal(t, tt.want, stored.Content)
			assert.Equal(t, f.postID, stored.PostID)
		})
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateComment(ctx, f.brian, &model.CreateCommentDTO{PostID: f.postID, Content: "bye"})
	require.NoError(t, err)
	id := created.Comment.ID

	assert.ErrorIs(t, f.service.DeleteComment(ctx, f.brian, 99), custom_errors.ErrCommentNotFound)
	assert.ErrorIs(t, f.service.DeleteComment(ctx, nil, id), custom_errors.ErrNotAuthenticated)
	assert.ErrorIs(t, f.service.DeleteComment(ctx, f.adam, id), custom_errors.ErrForbidden)

	require.NoError(t, f.service.DeleteComment(ctx, f.brian, id))

	_, err = f.service.GetCommentByID(ctx, id)
	assert.ErrorIs(t, err, custom_errors.ErrCommentNotFound)
}
