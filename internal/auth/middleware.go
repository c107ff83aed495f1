package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const identityKey = "auth_identity"

// Middleware authenticates bearer tokens and attaches the resulting identity
// to the request context. It never rejects a request itself: anonymous and
// failed credentials pass through untouched, and the policy layer decides
// whether they may proceed.
type Middleware struct {
	extractor *Extractor
	logger    *zap.Logger
}

// NewMiddleware constructs the interceptor.
func NewMiddleware(extractor *Extractor, logger *zap.Logger) *Middleware {
	return &Middleware{extractor: extractor, logger: logger}
}

// Handle runs once per request before route dispatch. Re-entry from nested
// middleware is a no-op once an identity is attached.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	if _, ok := IdentityFromContext(c); ok {
		return c.Next()
	}

	outcome := m.extractor.Extract(c.Get(fiber.HeaderAuthorization))
	if outcome.Ok {
		c.Locals(identityKey, outcome.Identity)
		m.logger.Debug("authenticated request",
			zap.String("subject", outcome.Identity.Subject),
			zap.String("role", string(outcome.Identity.Role)))
	}

	return c.Next()
}

// IdentityFromContext retrieves the request-scoped identity, if any.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
