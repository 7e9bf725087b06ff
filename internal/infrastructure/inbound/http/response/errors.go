package response

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
	ports "social-feed-service/internal/domain/ports/output"
)

type Detail struct {
	Detail string `json:"detail"`
}

const (
	detailNotFound         = "Not found."
	detailNotAuthenticated = "Authentication credentials were not provided."
	detailForbidden        = "You do not have permission to perform this action."
	detailInvalidToken     = "Invalid token."
	detailServerError      = "A server error occurred."
)

// ErrorHandler renders service and routing errors as JSON bodies.
func ErrorHandler(log ports.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := Map(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("Request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
		}
		return c.Status(status).JSON(body)
	}
}

// Map picks the status code and body for err.
func Map(err error) (int, any) {
	var validationErr *custom_errors.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Fields
	case errors.Is(err, custom_errors.ErrDuplicateFollow):
		return fiber.StatusBadRequest, Detail{Detail: custom_errors.ErrDuplicateFollow.Error()}
	case errors.Is(err, custom_errors.ErrInvalidInput):
		return fiber.StatusBadRequest, Detail{Detail: err.Error()}
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrCommentNotFound),
		errors.Is(err, custom_errors.ErrFollowerNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound):
		return fiber.StatusNotFound, Detail{Detail: detailNotFound}
	case errors.Is(err, custom_errors.ErrNotAuthenticated):
		return fiber.StatusForbidden, Detail{Detail: detailNotAuthenticated}
	case errors.Is(err, custom_errors.ErrForbidden):
		return fiber.StatusForbidden, Detail{Detail: detailForbidden}
	case errors.Is(err, custom_errors.ErrInvalidToken):
		return fiber.StatusUnauthorized, Detail{Detail: detailInvalidToken}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, Detail{Detail: fiberDetail(fiberErr)}
	default:
		return fiber.StatusInternalServerError, Detail{Detail: detailServerError}
	}
}

func fiberDetail(err *fiber.Error) string {
	switch err.Code {
	case fiber.StatusNotFound:
		return detailNotFound
	case fiber.StatusMethodNotAllowed:
		if err.Message != "" && err.Message != fiber.ErrMethodNotAllowed.Message {
			return err.Message
		}
		return "Method not allowed."
	default:
		return err.Message
	}
}

// MethodNotAllowed answers verbs a resource does not support.
func MethodNotAllowed(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusMethodNotAllowed, fmt.Sprintf("Method \"%s\" not allowed.", c.Method()))
}
