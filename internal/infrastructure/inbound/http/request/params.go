package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"social-feed-service/internal/custom_errors"
)

// ID reads the numeric :id route parameter. Anything else is a 404.
func ID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

// Bind decodes a JSON, urlencoded or multipart body into dst. An empty body leaves dst untouched.
func Bind(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusUnprocessableEntity {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported media type in request.")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return custom_errors.NewValidationError().Add(typeErr.Field, typeMessage(typeErr.Type))
		}
		return fiber.NewError(fiber.StatusBadRequest, "Malformed request body.")
	}
	return nil
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "Invalid value."
	}
	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	}
	return "Invalid value."
}

// OptionalInt64 reads an integer query filter. A present but malformed value is recorded on verr.
func OptionalInt64(c *fiber.Ctx, key string, verr *custom_errors.ValidationError) *int64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr.Add(key, "Enter a whole number.")
		return nil
	}
	return &v
}

type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// Parse reads limit and offset. Invalid values fall back to the defaults and limit is capped at MaxLimit.
func (p Paging) Parse(c *fiber.Ctx) (limit, offset int) {
	limit = p.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}
