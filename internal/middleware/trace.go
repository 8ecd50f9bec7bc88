package middleware

import (
	"catalog/pkg/events"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const TraceHeader = "X-Trace-ID"

// NewTraceMiddleware carries the caller's trace id, or a fresh one, into the user context
// so events published while serving the request share it.
func NewTraceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := strings.TrimSpace(c.Get(TraceHeader))
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.SetUserContext(events.WithTraceID(c.UserContext(), traceID))
		c.Set(TraceHeader, traceID)
		return c.Next()
	}
}
