package delivery_http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	comment_service "social-feed-service/internal/application/service/comment"
	follower_service "social-feed-service/internal/application/service/follower"
	post_service "social-feed-service/internal/application/service/post"
	user_service "social-feed-service/internal/application/service/user"
	"social-feed-service/internal/application/validation"
	"social-feed-service/internal/infrastructure/auth"
	delivery_http "social-feed-service/internal/infrastructure/inbound/http"
	"social-feed-service/internal/infrastructure/inbound/http/request"
	"social-feed-service/internal/infrastructure/logger"
	"social-feed-service/internal/infrastructure/outbound/metrics/prometheus"
	comment_memory "social-feed-service/internal/infrastructure/outbound/repository/comment/memory"
	follower_memory "social-feed-service/internal/infrastructure/outbound/repository/follower/memory"
	uow_memory "social-feed-service/internal/infrastructure/outbound/repository/memory"
	post_memory "social-feed-service/internal/infrastructure/outbound/repository/post/memory"
	user_memory "social-feed-service/internal/infrastructure/outbound/repository/user/memory"
)

type testServer struct {
	app    *fiber.App
	tokens map[string]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider(prom.NewRegistry())
	validate := validation.New()
	tokenManager := auth.NewTokenManager("test-secret", "social-feed-service", time.Hour)

	userRepo := user_memory.NewUserRepository(log)
	tokens := make(map[string]string)
	for _, name := range []string{"adam", "brian"} {
		u, err := userRepo.Create(ctx, name)
		require.NoError(t, err)
		token, err := tokenManager.Issue(u.ID, u.Username)
		require.NoError(t, err)
		tokens[name] = token
	}

	posts := post_memory.NewPostRepository(log)
	comments := comment_memory.NewCommentRepository(log)
	followers := follower_memory.NewFollowerRepository(log)
	unitOfWork := uow_memory.NewUnitOfWork(posts, comments, followers)
	users := user_service.NewUserService(userRepo, log)

	app := delivery_http.NewRouter(delivery_http.RouterDeps{
		PostService:     post_service.NewPostService(posts, comments, unitOfWork, users, validate, log, metrics),
		CommentService:  comment_service.NewCommentService(comments, unitOfWork, users, validate, log, metrics),
		FollowerService: follower_service.NewFollowerService(followers, unitOfWork, users, validate, log, metrics),
		Tokens:          tokenManager,
		Users:           users,
		Paging:          request.Paging{DefaultLimit: 10, MaxLimit: 100},
		Metrics:         metrics,
		Log:             log,
	})

	return &testServer{app: app, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, user, body string) (int, map[string]any) {
	t.Helper()
	return s.send(t, method, path, user, fiber.MIMEApplicationJSON, body)
}

func (s *testServer) send(t *testing.T, method, path, user, contentType, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if token, ok := s.tokens[user]; ok {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	} else if user != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+user)
	}

	resp, err := s.app.Test(req, -1)
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

func (s *testServer) count(t *testing.T, path string) int {
	t.Helper()
	status, body := s.do(t, fiber.MethodGet, path, "", "")
	require.Equal(t, fiber.StatusOK, status)
	return int(body["count"].(float64))
}

func TestPostScenarios(t *testing.T) {
	t.Run("Logged in user can create a post", func(t *testing.T) {
		s := newTestServer(t)

		status, body := s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"a title"}`)

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "adam", body["owner"])
		assert.Equal(t, 1, s.count(t, "/posts/"))
	})

	t.Run("Anonymous user cannot create a post", func(t *testing.T) {
		s := newTestServer(t)

		status, _ := s.do(t, fiber.MethodPost, "/posts/", "", `{"title":"a title"}`)

		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, 0, s.count(t, "/posts/"))
	})

	t.Run("Only the owner can update a post", func(t *testing.T) {
		s := newTestServer(t)
		status, _ := s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"a title"}`)
		require.Equal(t, fiber.StatusCreated, status)

		status, body := s.do(t, fiber.MethodGet, "/posts/1/", "", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "a title", body["title"])

		status, _ = s.do(t, fiber.MethodPut, "/posts/1/", "brian", `{"title":"a new title"}`)
		assert.Equal(t, fiber.StatusForbidden, status)
		_, body = s.do(t, fiber.MethodGet, "/posts/1/", "", "")
		assert.Equal(t, "a title", body["title"])

		status, body = s.do(t, fiber.MethodPut, "/posts/1/", "adam", `{"title":"a new title"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "a new title", body["title"])
		_, body = s.do(t, fiber.MethodGet, "/posts/1/", "", "")
		assert.Equal(t, "a new title", body["title"])
	})

	t.Run("Unknown and malformed ids are not found", func(t *testing.T) {
		s := newTestServer(t)

		for _, path := range []string{"/posts/999/", "/posts/abc/", "/comments/999/", "/follower/abc"} {
			status, _ := s.do(t, fiber.MethodGet, path, "", "")
			assert.Equal(t, fiber.StatusNotFound, status, path)
		}

		status, _ := s.do(t, fiber.MethodPut, "/posts/999/", "", `{"title":"x"}`)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("Deleting a post removes its comments", func(t *testing.T) {
		s := newTestServer(t)
		s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"a title"}`)
		status, _ := s.do(t, fiber.MethodPost, "/comments/", "brian", `{"post":1,"content":"nice"}`)
		require.Equal(t, fiber.StatusCreated, status)

		_, body := s.do(t, fiber.MethodGet, "/posts/1/", "", "")
		assert.Equal(t, float64(1), body["comments_count"])

		status, _ = s.do(t, fiber.MethodDelete, "/posts/1/", "brian", "")
		assert.Equal(t, fiber.StatusForbidden, status)

		status, _ = s.do(t, fiber.MethodDelete, "/posts/1/", "adam", "")
		assert.Equal(t, fiber.StatusNoContent, status)
		assert.Equal(t, 0, s.count(t, "/comments/"))
	})
}

func TestCommentScenarios(t *testing.T) {
	s := newTestServer(t)
	s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"first"}`)
	s.do(t, fiber.MethodPost, "/posts/", "brian", `{"title":"second"}`)

	for i, c := range []struct{ user, post string }{{"adam", "1"}, {"brian", "1"}, {"adam", "2"}} {
		status, body := s.do(t, fiber.MethodPost, "/comments/", c.user, fmt.Sprintf(`{"post":%s,"content":"comment %d"}`, c.post, i))
		require.Equal(t, fiber.StatusCreated, status, body)
	}

	assert.Equal(t, 2, s.count(t, "/comments/?post=1"))
	assert.Equal(t, 1, s.count(t, "/comments/?post=2"))
	assert.Equal(t, 0, s.count(t, "/comments/?post=3"))

	status, body := s.do(t, fiber.MethodPost, "/comments/", "adam", `{"post":42,"content":"lost"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{`Invalid pk "42" - object does not exist.`}, body["post"])

	status, body = s.do(t, fiber.MethodPatch, "/comments/1/", "adam", `{"content":"edited","post":2}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "edited", body["content"])
	assert.Equal(t, float64(1), body["post"])

	status, _ = s.do(t, fiber.MethodDelete, "/comments/1/", "brian", "")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestFollowerScenarios(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, fiber.MethodPost, "/follower/", "adam", `{"followed":2}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "adam", body["owner"])
	assert.Equal(t, "brian", body["followed_name"])

	status, body = s.do(t, fiber.MethodPost, "/follower/", "adam", `{"followed":2}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "possible duplicate", body["detail"])

	status, _ = s.do(t, fiber.MethodPut, "/follower/1/", "adam", `{"followed":1}`)
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	status, _ = s.do(t, fiber.MethodPatch, "/follower/1/", "adam", `{"followed":1}`)
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)

	status, _ = s.do(t, fiber.MethodPost, "/follower/", "", `{"followed":2}`)
	assert.Equal(t, fiber.StatusForbidden, status)

	assert.Equal(t, 1, s.count(t, "/follower/?followed=2"))

	status, _ = s.do(t, fiber.MethodDelete, "/follower/1/", "brian", "")
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = s.do(t, fiber.MethodDelete, "/follower/1/", "adam", "")
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, fiber.MethodGet, "/posts/", "not-a-jwt", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token.", body["detail"])

	status, _ = s.do(t, fiber.MethodGet, "/posts/", "adam", "")
	assert.Equal(t, fiber.StatusOK, status)
}

// seed creates adam's post 1, brian's comment 1 on it and adam's follow of brian (follower 1).
func (s *testServer) seed(t *testing.T) {
	t.Helper()
	status, _ := s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"a title"}`)
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = s.do(t, fiber.MethodPost, "/comments/", "brian", `{"post":1,"content":"nice"}`)
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = s.do(t, fiber.MethodPost, "/follower/", "adam", `{"followed":2}`)
	require.Equal(t, fiber.StatusCreated, status)
}

func TestPermissionIsCheckedBeforeTheBody(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	tests := []struct {
		name        string
		method      string
		path        string
		user        string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "anonymous create post, malformed", method: fiber.MethodPost, path: "/posts/", body: `{"title":`, wantStatus: fiber.StatusForbidden},
		{name: "anonymous create post, unsupported media type", method: fiber.MethodPost, path: "/posts/", contentType: fiber.MIMETextPlain, body: "title", wantStatus: fiber.StatusForbidden},
		{name: "anonymous create comment, wrong type", method: fiber.MethodPost, path: "/comments/", body: `{"post":"x"}`, wantStatus: fiber.StatusForbidden},
		{name: "anonymous create follower, malformed", method: fiber.MethodPost, path: "/follower/", body: `{"followed":`, wantStatus: fiber.StatusForbidden},
		{name: "anonymous update post, malformed", method: fiber.MethodPut, path: "/posts/1/", body: `{"title":`, wantStatus: fiber.StatusForbidden},
		{name: "non-owner update post, malformed", method: fiber.MethodPut, path: "/posts/1/", user: "brian", body: `{"title":`, wantStatus: fiber.StatusForbidden},
		{name: "anonymous update comment, malformed", method: fiber.MethodPatch, path: "/comments/1/", body: `{"content":`, wantStatus: fiber.StatusForbidden},
		{name: "non-owner update comment, malformed", method: fiber.MethodPut, path: "/comments/1/", user: "adam", body: `{"content":`, wantStatus: fiber.StatusForbidden},
		{name: "unknown post, malformed", method: fiber.MethodPut, path: "/posts/9/", body: `{"title":`, wantStatus: fiber.StatusNotFound},
		{name: "owner update post, malformed", method: fiber.MethodPut, path: "/posts/1/", user: "adam", body: `{"title":`, wantStatus: fiber.StatusBadRequest},
		{name: "owner create post, unsupported media type", method: fiber.MethodPost, path: "/posts/", user: "adam", contentType: fiber.MIMETextPlain, body: "title", wantStatus: fiber.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType := tt.contentType
			if contentType == "" {
				contentType = fiber.MIMEApplicationJSON
			}

			status, _ := s.send(t, tt.method, tt.path, tt.user, contentType, tt.body)

			assert.Equal(t, tt.wantStatus, status)
		})
	}

	assert.Equal(t, 1, s.count(t, "/posts/"))
	assert.Equal(t, 1, s.count(t, "/comments/"))
	assert.Equal(t, 1, s.count(t, "/follower/"))
}

func TestRejectedWritesLeaveObjectsUnchanged(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	tests := []struct {
		name   string
		method string
		path   string
		user   string
		body   string
	}{
		{name: "anonymous put post", method: fiber.MethodPut, path: "/posts/1/", body: `{"title":"a new title"}`},
		{name: "anonymous patch post", method: fiber.MethodPatch, path: "/posts/1/", body: `{"title":"a new title"}`},
		{name: "anonymous delete post", method: fiber.MethodDelete, path: "/posts/1/"},
		{name: "anonymous put comment", method: fiber.MethodPut, path: "/comments/1/", body: `{"content":"edited"}`},
		{name: "anonymous delete comment", method: fiber.MethodDelete, path: "/comments/1/"},
		{name: "non-owner delete comment", method: fiber.MethodDelete, path: "/comments/1/", user: "adam"},
		{name: "anonymous delete follower", method: fiber.MethodDelete, path: "/follower/1/"},
		{name: "non-owner delete follower", method: fiber.MethodDelete, path: "/follower/1/", user: "brian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := s.do(t, tt.method, tt.path, tt.user, tt.body)
			assert.Equal(t, fiber.StatusForbidden, status)
		})
	}

	status, body := s.do(t, fiber.MethodGet, "/posts/1/", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "a title", body["title"])

	status, body = s.do(t, fiber.MethodGet, "/comments/1/", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "nice", body["content"])

	status, body = s.do(t, fiber.MethodGet, "/follower/1/", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "brian", body["followed_name"])
}

func TestBlankTextFields(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	status, body := s.do(t, fiber.MethodPut, "/posts/1/", "adam", `{"title":"   "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{"This field may not be blank."}, body["title"])
	_, body = s.do(t, fiber.MethodGet, "/posts/1/", "", "")
	assert.Equal(t, "a title", body["title"])

	status, body = s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":" \t "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "title")

	status, body = s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":"  padded  "}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "padded", body["title"])

	status, body = s.do(t, fiber.MethodPost, "/comments/", "brian", `{"post":1,"content":"   "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "content")

	status, body = s.do(t, fiber.MethodPatch, "/comments/1/", "brian", `{"content":"  "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{"This field may not be blank."}, body["content"])
}

func TestWrongFieldTypeNamesTheField(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, fiber.MethodPost, "/posts/", "adam", `{"title":123}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{"Not a valid string."}, body["title"])
	assert.Equal(t, 0, s.count(t, "/posts/"))
}
