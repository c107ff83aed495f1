package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"ADMIN", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"ROLE_ADMIN", RoleAdmin, true},
		{"EMPLOYER", RoleEmployer, true},
		{"CANDIDATE", RoleCandidate, true},
		{"NTD", RoleEmployer, true},
		{"ntd", RoleEmployer, true},
		{"ROLE_NTD", RoleEmployer, true},
		{"UNGVIEN", RoleCandidate, true},
		{"role_ungvien", RoleCandidate, true},
		{" candidate ", RoleCandidate, true},
		{"", "", false},
		{"ROLE_", "", false},
		{"SUPERUSER", "", false},
		{"ADMINISTRATOR", "", false},
	}

	for _, tc := range cases {
		got, ok := CanonicalRole(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
