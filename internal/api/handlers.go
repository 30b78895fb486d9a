package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/katakuxiko/santijr/internal/model"
	"github.com/katakuxiko/santijr/internal/service"
	"github.com/katakuxiko/santijr/internal/util"
)

const healthMessage = "Santi.JR Backend Server is running"

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	tutor *service.Tutor
	log   zerolog.Logger
}

func NewHandler(tutor *service.Tutor, log zerolog.Logger) *Handler {
	return &Handler{tutor: tutor, log: log}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(model.HealthResponse{
		Status:    "ok",
		Message:   healthMessage,
		Timestamp: util.Now(),
	})
}

// Ask relays a free-form question after the priming context.
func (h *Handler) Ask(c *fiber.Ctx) error {
	var req model.AskRequest
	if err := bodyField(c, "message", &req.Message); err != nil {
		return writeError(c, errInvalidMessage)
	}

	text, err := h.tutor.Ask(c.UserContext(), req.Message)
	if err != nil {
		e := askError(err)
		if e.status != fiber.StatusBadRequest {
			h.log.Error().Err(err).Msg("error processing request")
		}
		return writeError(c, e)
	}
	return c.JSON(model.AskResponse{
		Response:  text,
		Timestamp: util.Now(),
	})
}

// Teach generates a learning guide for a topic.
func (h *Handler) Teach(c *fiber.Ctx) error {
	var req model.TeachRequest
	if err := bodyField(c, "topic", &req.Topic); err != nil {
		return writeError(c, errInvalidTopic)
	}

	text, err := h.tutor.Teach(c.UserContext(), req.Topic)
	if err != nil {
		e := teachError(err)
		if e.status != fiber.StatusBadRequest {
			h.log.Error().Err(err).Msg("error in teach endpoint")
		}
		return writeError(c, e)
	}
	return c.JSON(model.TeachResponse{
		Response:  text,
		Topic:     req.Topic,
		Timestamp: util.Now(),
	})
}

// NotFound terminates the chain for unmatched routes.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return service.ErrNotFound
}

// bodyField reads the string stored under exactly key in a JSON object body.
// Keys are matched case-sensitively and a later "Message" never overwrites
// "message". A missing key, an empty body or a non-JSON content type leave
// dst empty so validation reports the missing field; a value that is not a
// string is an error.
func bodyField(c *fiber.Ctx, key string, dst *string) error {
	if len(c.Body()) == 0 || !c.Is("json") {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(c.Body(), &fields); err != nil {
		return err
	}
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
