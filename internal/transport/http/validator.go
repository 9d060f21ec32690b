package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"chessrules/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// validationMiddleware parses and validates JSON bodies, leaving the result in
// c.Locals("validatedBody") for the handler.
func validationMiddleware(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Next()
	}

	path := c.Path()
	var requestType any

	switch {
	case strings.HasSuffix(path, "/games"):
		requestType = &core.CreateGameRequest{}
	case strings.HasSuffix(path, "/moves"):
		requestType = &core.MoveRequest{}
	case strings.HasSuffix(path, "/promotion"):
		requestType = &core.PromotionRequest{}
	default:
		return c.Next()
	}

	// An empty body is a valid create-game request
	if len(c.Body()) > 0 {
		if err := c.BodyParser(requestType); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid request body",
				Code:    core.CodeInvalidRequest,
				Details: err.Error(),
			})
		}
	}

	if err := validate.Struct(requestType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "validation failed",
			Code:    core.CodeInvalidRequest,
			Details: describeValidation(err),
		})
	}

	c.Locals("validatedBody", requestType)
	c.Locals("validated", true)

	return c.Next()
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	var details strings.Builder
	for _, e := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", e.Field())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", e.Field(), e.Param())
		case "len":
			fmt.Fprintf(&details, "%s must be exactly %s characters", e.Field(), e.Param())
		case "min":
			if e.Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at least %s characters", e.Field(), e.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at least %s", e.Field(), e.Param())
			}
		case "max":
			if e.Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at most %s characters", e.Field(), e.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at most %s", e.Field(), e.Param())
			}
		default:
			fmt.Fprintf(&details, "%s failed %s validation", e.Field(), e.Tag())
		}
	}
	return details.String()
}

// validatedBody returns the request parsed by validationMiddleware
func validatedBody[T any](c *fiber.Ctx) (T, bool) {
	var zero T
	if validated, ok := c.Locals("validated").(bool); !ok || !validated {
		return zero, false
	}
	req, ok := c.Locals("validatedBody").(*T)
	if !ok || req == nil {
		return zero, false
	}
	return *req, true
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
