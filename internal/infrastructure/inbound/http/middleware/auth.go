package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	ports "social-feed-service/internal/domain/ports/output"
)

const requesterKey = "requester"

type TokenParser interface {
	Parse(token string) (int64, error)
}

type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// Authenticate resolves an optional bearer token into a requester. Requests without an
// Authorization header continue anonymously; a bad or unknown token is rejected with 401.
func Authenticate(tokens TokenParser, users UserGetter, log ports.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			return custom_errors.ErrInvalidToken
		}

		userID, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			log.Debug("Rejected bearer token", slog.String("error", err.Error()))
			return custom_errors.ErrInvalidToken
		}

		user, err := users.GetUser(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				log.Debug("Token subject does not exist", slog.Int64("user_id", userID))
				return custom_errors.ErrInvalidToken
			}
			return err
		}

		c.Locals(requesterKey, &model.Requester{UserID: user.ID, Username: user.Username})
		return c.Next()
	}
}

// Requester returns the authenticated caller, or nil for anonymous requests.
func Requester(c *fiber.Ctx) *model.Requester {
	r, _ := c.Locals(requesterKey).(*model.Requester)
	return r
}
