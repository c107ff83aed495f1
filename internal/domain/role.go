package domain

import "strings"

// Role is a canonical role name. The portal knows exactly three.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleEmployer  Role = "EMPLOYER"
	RoleCandidate Role = "CANDIDATE"
)

// Numeric role identifiers as stored in the roles table.
const (
	RoleIDAdmin     = 1
	RoleIDEmployer  = 2
	RoleIDCandidate = 3
)

// Legacy role names still present in tokens issued before the rename.
const (
	legacyEmployer  = "NTD"
	legacyCandidate = "UNGVIEN"
)

// CanonicalRole normalizes a raw role name from a token claim. It uppercases,
// strips an optional "ROLE_" prefix, and maps the legacy names onto the
// current ones. Unknown names report ok=false.
func CanonicalRole(name string) (Role, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	switch normalized {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleEmployer), legacyEmployer:
		return RoleEmployer, true
	case string(RoleCandidate), legacyCandidate:
		return RoleCandidate, true
	default:
		return "", false
	}
}
