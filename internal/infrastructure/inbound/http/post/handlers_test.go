package post_http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/infrastructure/inbound/http/middleware"
	post_http "social-feed-service/internal/infrastructure/inbound/http/post"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/inbound/http/response"
	"social-feed-service/internal/infrastructure/logger"
	post_service_mock "social-feed-service/mocks/post"
)

type stubTokens map[string]int64

func (s stubTokens) Parse(token string) (int64, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, custom_errors.ErrInvalidToken
}

type stubUsers map[int64]string

func (s stubUsers) GetUser(_ context.Context, id int64) (*model.User, error) {
	if name, ok := s[id]; ok {
		return &model.User{ID: id, Username: name}, nil
	}
	return nil, custom_errors.ErrUserNotFound
}

var (
	adam  = &model.Requester{UserID: 1, Username: "adam"}
	brian = &model.Requester{UserID: 2, Username: "brian"}
)

func newApp(service *post_service_mock.Service) *fiber.App {
	log := logger.New("test")
	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler(log)})
	app.Use(middleware.Authenticate(stubTokens{"adam": 1, "brian": 2}, stubUsers{1: "adam", 2: "brian"}, log))
	post_http.NewPostAPI(service, request.Paging{DefaultLimit: 10, MaxLimit: 100}, log).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func detailed(id, owner int64, username, title string) *model.PostDetailed {
	return &model.PostDetailed{
		Post: &model.Post{
			ID:        id,
			OwnerID:   owner,
			Title:     title,
			CreatedAt: pgtype.Timestamptz{Valid: true},
			UpdatedAt: pgtype.Timestamptz{Valid: true},
		},
		Owner:         &model.User{ID: owner, Username: username},
		CommentsCount: 2,
	}
}

func TestCreatePostHandler(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       string
		setupMock  func(s *post_service_mock.Service)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:  "Created",
			token: "adam",
			body:  `{"title":"a title"}`,
			setupMock: func(s *post_service_mock.Service) {
				s.On("CreatePost", mock.Anything, adam, &model.CreatePostDTO{Title: "a title"}).
					Return(detailed(1, 1, "adam", "a title"), nil)
			},
			wantStatus: fiber.StatusCreated,
			wantBody:   map[string]any{"id": float64(1), "owner": "adam", "is_owner": true, "title": "a title"},
		},
		{
			name:       "Anonymous",
			body:       `{"title":"a title"}`,
			setupMock:  func(s *post_service_mock.Service) {},
			wantStatus: fiber.StatusForbidden,
			wantBody:   map[string]any{"detail": "Authentication credentials were not provided."},
		},
		{
			name:       "Anonymous with malformed body",
			body:       `{"title":`,
			setupMock:  func(s *post_service_mock.Service) {},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:  "Validation",
			token: "adam",
			body:  `{}`,
			setupMock: func(s *post_service_mock.Service) {
				s.On("CreatePost", mock.Anything, adam, mock.Anything).
					Return(nil, custom_errors.NewValidationError().Add("title", "This field is required."))
			},
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"title": []any{"This field is required."}},
		},
		{
			name:       "Malformed body",
			token:      "adam",
			body:       `{"title":`,
			setupMock:  func(s *post_service_mock.Service) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "Bad token",
			token:      "nobody",
			body:       `{"title":"a title"}`,
			setupMock:  func(s *post_service_mock.Service) {},
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   map[string]any{"detail": "Invalid token."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := post_service_mock.NewService(t)
			tt.setupMock(service)

			status, body := do(t, newApp(service), fiber.MethodPost, "/posts/", tt.token, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			for k, v := range tt.wantBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}

func TestGetPostHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("GetPostByID", mock.Anything, int64(1)).Return(detailed(1, 1, "adam", "a title"), nil)

		status, body := do(t, newApp(service), fiber.MethodGet, "/posts/1/", "brian", "")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "a title", body["title"])
		assert.Equal(t, false, body["is_owner"])
		assert.Equal(t, float64(2), body["comments_count"])
		assert.Equal(t, float64(1), body["owner_id"])
	})

	t.Run("Unknown id", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("GetPostByID", mock.Anything, int64(7)).Return(nil, custom_errors.ErrPostNotFound)

		status, body := do(t, newApp(service), fiber.MethodGet, "/posts/7", "", "")

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Not found.", body["detail"])
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		service := post_service_mock.NewService(t)

		status, _ := do(t, newApp(service), fiber.MethodGet, "/posts/abc/", "", "")

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestListPostsHandler(t *testing.T) {
	t.Run("Passes filters and paging", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		owner, limit, offset := int64(1), 100, 5
		service.On("ListPosts", mock.Anything, &model.PostFilters{OwnerID: &owner, Limit: &limit, Offset: &offset}).
			Return([]*model.PostDetailed{detailed(3, 1, "adam", "third")}, 3, nil)

		status, body := do(t, newApp(service), fiber.MethodGet, "/posts/?owner=1&limit=500&offset=5", "adam", "")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(3), body["count"])
		results, ok := body["results"].([]any)
		require.True(t, ok)
		require.Len(t, results, 1)
		assert.Equal(t, true, results[0].(map[string]any)["is_owner"])
	})

	t.Run("Malformed owner filter", func(t *testing.T) {
		service := post_service_mock.NewService(t)

		status, body := do(t, newApp(service), fiber.MethodGet, "/posts/?owner=x", "", "")

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, []any{"Enter a whole number."}, body["owner"])
	})
}

func TestUpdatePostHandler(t *testing.T) {
	title := "a new title"

	t.Run("PUT is a full update", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("GetPostByID", mock.Anything, int64(1)).Return(detailed(1, 1, "adam", "a title"), nil)
		service.On("UpdatePost", mock.Anything, adam, int64(1), &model.UpdatePostDTO{Title: &title}, false).
			Return(detailed(1, 1, "adam", title), nil)

		status, body := do(t, newApp(service), fiber.MethodPut, "/posts/1/", "adam", `{"title":"a new title"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, title, body["title"])
	})

	t.Run("PATCH is partial", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("GetPostByID", mock.Anything, int64(1)).Return(detailed(1, 1, "adam", "a title"), nil)
		service.On("UpdatePost", mock.Anything, adam, int64(1), &model.UpdatePostDTO{Title: &title}, true).
			Return(detailed(1, 1, "adam", title), nil)

		status, _ := do(t, newApp(service), fiber.MethodPatch, "/posts/1", "adam", `{"title":"a new title"}`)

		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("Unknown post", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("GetPostByID", mock.Anything, int64(9)).Return(nil, custom_errors.ErrPostNotFound)

		status, _ := do(t, newApp(service), fiber.MethodPut, "/posts/9/", "", `{"title":`)

		assert.Equal(t, fiber.StatusNotFound, status)
	})

	tests := []struct {
		name       string
		token      string
		wantDetail string
	}{
		{name: "Anonymous", wantDetail: "Authentication credentials were not provided."},
		{name: "Non-owner", token: "brian", wantDetail: "You do not have permission to perform this action."},
	}
	for _, tt := range tests {
		t.Run(tt.name+" is rejected before the body is read", func(t *testing.T) {
			service := post_service_mock.NewService(t)
			service.On("GetPostByID", mock.Anything, int64(1)).Return(detailed(1, 1, "adam", "a title"), nil)

			status, body := do(t, newApp(service), fiber.MethodPut, "/posts/1/", tt.token, `{"title":`)

			assert.Equal(t, fiber.StatusForbidden, status)
			assert.Equal(t, tt.wantDetail, body["detail"])
			service.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		service := post_service_mock.NewService(t)
		service.On("DeletePost", mock.Anything, adam, int64(1)).Return(nil)

		status, body := do(t, newApp(service), fiber.MethodDelete, "/posts/1/", "adam", "")

		assert.Equal(t, fiber.StatusNoContent, status)
		assert.Empty(t, body)
	})

	t.Run("Collection delete is not allowed", func(t *testing.T) {
		service := post_service_mock.NewService(t)

		status, body := do(t, newApp(service), fiber.MethodDelete, "/posts/", "adam", "")

		assert.Equal(t, fiber.StatusMethodNotAllowed, status)
		assert.Equal(t, `Method "DELETE" not allowed.`, body["detail"])
	})
}
