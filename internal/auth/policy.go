package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/domain"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// Rejection reasons exposed by policy decisions.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)

// Decision is the outcome of evaluating a request against the policy.
type Decision struct {
	Allowed bool
	Reason  string
}

// Rule maps a request pattern to the roles permitted to satisfy it.
// An empty Methods list matches any method. Path patterns are ant style:
// "*" matches one segment, "**" matches any remaining subtree including the
// bare prefix itself.
type Rule struct {
	Methods     []string
	PathPattern string
	Roles       []domain.Role
	PermitAll   bool
}

// Policy is an ordered rule table evaluated top to bottom, first match wins.
// Rules must be listed most-specific first; NewPolicy rejects tables where a
// broader early rule would shadow a narrower later one.
type Policy struct {
	rules []Rule
}

// NewPolicy validates the rule table and builds the policy.
func NewPolicy(rules []Rule) (*Policy, error) {
	for i, rule := range rules {
		if !strings.HasPrefix(rule.PathPattern, "/") {
			return nil, fmt.Errorf("rule %d: path pattern %q must start with /", i, rule.PathPattern)
		}
		if !rule.PermitAll && len(rule.Roles) == 0 {
			return nil, fmt.Errorf("rule %d: must permit all or name at least one role", i)
		}
	}

	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if shadows(rules[i], rules[j]) {
				return nil, fmt.Errorf("rule %d (%s) shadows stricter rule %d (%s): reorder most-specific first",
					i, rules[i].PathPattern, j, rules[j].PathPattern)
			}
		}
	}

	return &Policy{rules: rules}, nil
}

// Evaluate decides whether the request may proceed. It is total and
// deterministic: every method/path/identity combination yields exactly one
// decision. ADMIN satisfies any role-restricted rule.
func (p *Policy) Evaluate(method, path string, identity *Identity) Decision {
	for _, rule := range p.rules {
		if !matchMethod(rule.Methods, method) || !matchPath(rule.PathPattern, path) {
			continue
		}
		if rule.PermitAll {
			return Decision{Allowed: true}
		}
		if identity == nil {
			return Decision{Reason: ReasonUnauthenticated}
		}
		if identity.Role == domain.RoleAdmin || containsRole(rule.Roles, identity.Role) {
			return Decision{Allowed: true}
		}
		return Decision{Reason: ReasonForbidden}
	}

	// Default rule: any authenticated role.
	if identity == nil {
		return Decision{Reason: ReasonUnauthenticated}
	}
	return Decision{Allowed: true}
}

// Handler enforces the policy as Fiber middleware. It must run after the
// authentication middleware so the request-scoped identity is populated.
// Rejections carry no detail about why a credential failed.
func (p *Policy) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var identity *Identity
		if id, ok := IdentityFromContext(c); ok {
			identity = &id
		}

		decision := p.Evaluate(c.Method(), c.Path(), identity)
		if decision.Allowed {
			return c.Next()
		}
		if decision.Reason == ReasonForbidden {
			return apperrors.NewForbidden("insufficient role")
		}
		return apperrors.NewUnauthorized("authentication required")
	}
}

// DefaultRules is the route table for the job portal API, ordered
// most-specific first. The application sub-paths must precede the broader
// job and application patterns or they would never match.
func DefaultRules() []Rule {
	return []Rule{
		{PathPattern: "/api/auth/**", PermitAll: true},
		{PathPattern: "/uploads/**", PermitAll: true},
		{Methods: []string{fiber.MethodGet}, PathPattern: "/api/jobs/**", PermitAll: true},
		{Methods: []string{fiber.MethodGet}, PathPattern: "/api/applications/user/**", Roles: []domain.Role{domain.RoleCandidate}},
		{Methods: []string{fiber.MethodGet}, PathPattern: "/api/applications/job/**", Roles: []domain.Role{domain.RoleEmployer}},
		{Methods: []string{fiber.MethodPost}, PathPattern: "/api/applications/**", Roles: []domain.Role{domain.RoleCandidate}},
		{Methods: []string{fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete}, PathPattern: "/api/jobs/**", Roles: []domain.Role{domain.RoleEmployer}},
		{PathPattern: "/api/employers/**", Roles: []domain.Role{domain.RoleEmployer}},
		{PathPattern: "/api/interviews/**", Roles: []domain.Role{domain.RoleEmployer}},
		{PathPattern: "/api/statistics/**", Roles: []domain.Role{domain.RoleEmployer}},
		{PathPattern: "/api/profile/**", Roles: []domain.Role{domain.RoleCandidate}},
	}
}

func matchMethod(methods []string, method string) bool {
	if len(methods) == 0 {
		return true
	}
	for _, m := range methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func matchPath(pattern, path string) bool {
	return matchSegments(splitPath(pattern), splitPath(path))
}

func matchSegments(pattern, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if pattern[0] == "**" {
		// "**" also matches the empty remainder, so "/api/jobs/**"
		// covers "/api/jobs" itself.
		for i := 0; i <= len(path); i++ {
			if matchSegments(pattern[1:], path[i:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	if pattern[0] != "*" && pattern[0] != path[0] {
		return false
	}
	return matchSegments(pattern[1:], path[1:])
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func containsRole(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// shadows reports whether the earlier rule fully covers the later rule's
// methods and paths while allowing strictly more callers. Such a table is a
// silent production bug (the later rule never fires), so construction fails.
func shadows(earlier, later Rule) bool {
	return methodsCover(earlier.Methods, later.Methods) &&
		patternCovers(earlier.PathPattern, later.PathPattern) &&
		morePermissive(earlier, later)
}

func methodsCover(outer, inner []string) bool {
	if len(outer) == 0 {
		return true
	}
	if len(inner) == 0 {
		return false
	}
	for _, m := range inner {
		if !matchMethod(outer, m) {
			return false
		}
	}
	return true
}

// patternCovers conservatively reports whether every path matched by inner is
// also matched by outer.
func patternCovers(outer, inner string) bool {
	if outer == inner {
		return true
	}
	outerSegs := splitPath(outer)
	if len(outerSegs) == 0 || outerSegs[len(outerSegs)-1] != "**" {
		return false
	}
	prefix := outerSegs[:len(outerSegs)-1]
	innerSegs := splitPath(inner)
	if len(innerSegs) < len(prefix) {
		return false
	}
	for i, seg := range prefix {
		if seg == "*" || seg == innerSegs[i] {
			continue
		}
		return false
	}
	return true
}

func morePermissive(earlier, later Rule) bool {
	if earlier.PermitAll {
		return !later.PermitAll
	}
	if later.PermitAll {
		return false
	}
	// Both role-restricted: earlier is strictly broader if it admits every
	// role the later admits plus at least one more.
	extra := false
	for _, r := range earlier.Roles {
		if !containsRole(later.Roles, r) {
			extra = true
		}
	}
	for _, r := range later.Roles {
		if !containsRole(earlier.Roles, r) {
			return false
		}
	}
	return extra
}
