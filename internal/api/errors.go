package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/katakuxiko/santijr/internal/model"
	"github.com/katakuxiko/santijr/internal/service"
)

// apiError is the status and JSON body written for a failure.
type apiError struct {
	status int
	body   model.ErrorResponse
}

func newAPIError(status int, summary, details string) apiError {
	return apiError{status: status, body: model.ErrorResponse{Error: summary, Details: details}}
}

var (
	errInvalidMessage = newAPIError(fiber.StatusBadRequest, "Invalid request", "Message is required and must be a non-empty string")
	errInvalidTopic   = newAPIError(fiber.StatusBadRequest, "Invalid request", "Topic is required and must be a non-empty string")
	errMessageTooLong = newAPIError(fiber.StatusBadRequest, "Message too long", "Message must be less than 10,000 characters")
	errConfiguration  = newAPIError(fiber.StatusInternalServerError, "Configuration error", "API key is not configured properly")
	errRateLimited    = newAPIError(fiber.StatusTooManyRequests, "Rate limit exceeded", "Please try again later")
	errAskInternal    = newAPIError(fiber.StatusInternalServerError, "Internal server error", "Failed to process your request. Please try again.")
	errTeachInternal  = newAPIError(fiber.StatusInternalServerError, "Internal server error", "Failed to generate teaching content")
	errNotFound       = newAPIError(fiber.StatusNotFound, "Not found", "The requested endpoint does not exist")
	errServer         = newAPIError(fiber.StatusInternalServerError, "Server error", "An unexpected error occurred")
)

func askError(err error) apiError {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return errInvalidMessage
	case errors.Is(err, service.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, service.ErrConfiguration):
		return errConfiguration
	case errors.Is(err, service.ErrRateLimited):
		return errRateLimited
	}
	return errAskInternal
}

// teachError does not sub-classify provider failures.
func teachError(err error) apiError {
	if errors.Is(err, service.ErrInvalidRequest) {
		return errInvalidTopic
	}
	return errTeachInternal
}

func writeError(c *fiber.Ctx, e apiError) error {
	return c.Status(e.status).JSON(e.body)
}

// NewErrorHandler answers errors that escaped a handler or middleware and
// logs them to log.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			return writeError(c, errNotFound)
		}
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, errNotFound)
		}
		if !errors.Is(err, service.ErrServer) {
			err = fmt.Errorf("%w: %w", service.ErrServer, err)
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return writeError(c, errServer)
	}
}
