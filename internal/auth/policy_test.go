package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

func defaultPolicy(t *testing.T) *Policy {
	t.Helper()
	policy, err := NewPolicy(DefaultRules())
	require.NoError(t, err)
	return policy
}

func identity(role domain.Role) *Identity {
	return &Identity{Subject: "someone@example.com", Role: role, UserID: 7}
}

func TestEvaluateDefaultTable(t *testing.T) {
	policy := defaultPolicy(t)

	cases := []struct {
		name     string
		method   string
		path     string
		identity *Identity
		allowed  bool
		reason   string
	}{
		{"anonymous job browse", "GET", "/api/jobs/123", nil, true, ""},
		{"anonymous job list", "GET", "/api/jobs", nil, true, ""},
		{"anonymous login", "POST", "/api/auth/login", nil, true, ""},
		{"anonymous upload fetch", "GET", "/uploads/cv/abc.pdf", nil, true, ""},
		{"candidate posting job", "POST", "/api/jobs", identity(domain.RoleCandidate), false, ReasonForbidden},
		{"employer posting job", "POST", "/api/jobs", identity(domain.RoleEmployer), true, ""},
		{"employer updating job", "PUT", "/api/jobs/44", identity(domain.RoleEmployer), true, ""},
		{"anonymous posting job", "POST", "/api/jobs", nil, false, ReasonUnauthenticated},
		{"anonymous profile read", "GET", "/api/profile/5", nil, false, ReasonUnauthenticated},
		{"candidate profile read", "GET", "/api/profile", identity(domain.RoleCandidate), true, ""},
		{"employer profile read", "GET", "/api/profile", identity(domain.RoleEmployer), false, ReasonForbidden},
		{"candidate applying", "POST", "/api/applications", identity(domain.RoleCandidate), true, ""},
		{"employer applying", "POST", "/api/applications", identity(domain.RoleEmployer), false, ReasonForbidden},
		{"candidate own applications", "GET", "/api/applications/user/7", identity(domain.RoleCandidate), true, ""},
		{"employer job applications", "GET", "/api/applications/job/3", identity(domain.RoleEmployer), true, ""},
		{"candidate reading job applications", "GET", "/api/applications/job/3", identity(domain.RoleCandidate), false, ReasonForbidden},
		{"candidate deleting employer", "DELETE", "/api/employers/9", identity(domain.RoleCandidate), false, ReasonForbidden},
		{"admin deleting employer", "DELETE", "/api/employers/9", identity(domain.RoleAdmin), true, ""},
		{"admin posting job", "POST", "/api/jobs", identity(domain.RoleAdmin), true, ""},
		{"admin reading profile", "GET", "/api/profile", identity(domain.RoleAdmin), true, ""},
		{"employer statistics", "GET", "/api/statistics/recruitment", identity(domain.RoleEmployer), true, ""},
		{"anonymous unmatched route", "GET", "/api/notifications", nil, false, ReasonUnauthenticated},
		{"candidate unmatched route", "GET", "/api/notifications", identity(domain.RoleCandidate), true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := policy.Evaluate(tc.method, tc.path, tc.identity)
			require.Equal(t, tc.allowed, decision.Allowed)
			require.Equal(t, tc.reason, decision.Reason)
		})
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	policy, err := NewPolicy([]Rule{
		{Methods: []string{"GET"}, PathPattern: "/api/reports/public/**", PermitAll: true},
		{Methods: []string{"GET"}, PathPattern: "/api/reports/**", Roles: []domain.Role{domain.RoleEmployer}},
	})
	require.NoError(t, err)

	require.True(t, policy.Evaluate("GET", "/api/reports/public/summary", nil).Allowed)

	decision := policy.Evaluate("GET", "/api/reports/internal", nil)
	require.False(t, decision.Allowed)
	require.Equal(t, ReasonUnauthenticated, decision.Reason)
}

func TestNewPolicyRejectsShadowedRule(t *testing.T) {
	_, err := NewPolicy([]Rule{
		{PathPattern: "/api/jobs/**", PermitAll: true},
		{Methods: []string{"POST"}, PathPattern: "/api/jobs/**", Roles: []domain.Role{domain.RoleEmployer}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "shadows")
}

func TestNewPolicyRejectsBrokenRules(t *testing.T) {
	_, err := NewPolicy([]Rule{{PathPattern: "api/jobs/**", PermitAll: true}})
	require.Error(t, err)

	_, err = NewPolicy([]Rule{{PathPattern: "/api/jobs/**"}})
	require.Error(t, err)
}

func TestNewPolicyAllowsDisjointMethods(t *testing.T) {
	// Same pattern twice is fine when the method sets do not overlap.
	_, err := NewPolicy([]Rule{
		{Methods: []string{"GET"}, PathPattern: "/api/jobs/**", PermitAll: true},
		{Methods: []string{"POST", "PUT"}, PathPattern: "/api/jobs/**", Roles: []domain.Role{domain.RoleEmployer}},
	})
	require.NoError(t, err)
}

func TestMatchPath(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/jobs/**", "/api/jobs", true},
		{"/api/jobs/**", "/api/jobs/", true},
		{"/api/jobs/**", "/api/jobs/123", true},
		{"/api/jobs/**", "/api/jobs/123/applications", true},
		{"/api/jobs/**", "/api/jobsearch", false},
		{"/api/jobs/**", "/api", false},
		{"/api/*/status", "/api/jobs/status", true},
		{"/api/*/status", "/api/jobs/123/status", false},
		{"/api/**/status", "/api/jobs/123/status", true},
		{"/api/jobs", "/api/jobs", true},
		{"/api/jobs", "/api/jobs/1", false},
		{"/**", "/anything/at/all", true},
		{"/**", "/", true},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, matchPath(tc.pattern, tc.path), "pattern %q path %q", tc.pattern, tc.path)
	}
}
