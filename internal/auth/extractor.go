package auth

import (
	"strings"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

const bearerPrefix = "Bearer "

// Identity is the verified principal attached to a single request. It must
// never outlive the request that produced it.
type Identity struct {
	Subject string
	Role    domain.Role
	UserID  int64
}

// Outcome is the tagged result of credential extraction. A request is either
// authenticated or anonymous; extraction itself never fails.
type Outcome struct {
	Identity Identity
	Ok       bool
}

// Authenticated wraps a verified identity.
func Authenticated(id Identity) Outcome {
	return Outcome{Identity: id, Ok: true}
}

// Anonymous is the outcome for any absent, malformed, or unverifiable
// credential.
func Anonymous() Outcome {
	return Outcome{}
}

// Extractor turns a raw Authorization header value into an Outcome.
// Verification failures are swallowed here on purpose: rejection is the
// authorization policy's job, so a garbage token on a public route must not
// produce an error.
type Extractor struct {
	tokens *TokenManager
}

// NewExtractor builds an extractor over the given token manager.
func NewExtractor(tokens *TokenManager) *Extractor {
	return &Extractor{tokens: tokens}
}

// Extract resolves the header value to an identity or anonymous.
func (e *Extractor) Extract(headerValue string) Outcome {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return Anonymous()
	}

	raw := strings.TrimSpace(strings.TrimPrefix(headerValue, bearerPrefix))
	if raw == "" || strings.Count(raw, ".") != 2 {
		return Anonymous()
	}

	claims, err := e.tokens.Verify(raw)
	if err != nil {
		return Anonymous()
	}

	role, ok := domain.CanonicalRole(claims.Role)
	if !ok {
		return Anonymous()
	}

	return Authenticated(Identity{
		Subject: claims.Subject,
		Role:    role,
		UserID:  claims.UserID,
	})
}
