package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

func TestExtractAnonymousOutcomes(t *testing.T) {
	extractor := NewExtractor(NewTokenManager(testSecret, time.Hour))

	cases := map[string]string{
		"absent header":      "",
		"wrong scheme":       "Basic dXNlcjpwYXNz",
		"prefix only":        "Bearer ",
		"no segments":        "Bearer garbage",
		"two segments":       "Bearer aaa.bbb",
		"four segments":      "Bearer a.b.c.d",
		"unverifiable token": "Bearer eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.bm9wZQ",
		"lowercase scheme":   "bearer sometoken",
		"scheme without gap": "Bearertoken.a.b",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			outcome := extractor.Extract(header)
			require.False(t, outcome.Ok)
		})
	}
}

func TestExtractAuthenticated(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	extractor := NewExtractor(tm)

	token, _, err := tm.Issue("carol@example.com", domain.RoleEmployer, 9)
	require.NoError(t, err)

	outcome := extractor.Extract("Bearer " + token)
	require.True(t, outcome.Ok)
	require.Equal(t, "carol@example.com", outcome.Identity.Subject)
	require.Equal(t, domain.RoleEmployer, outcome.Identity.Role)
	require.Equal(t, int64(9), outcome.Identity.UserID)
}

func TestExtractNormalizesLegacyRoleNames(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	extractor := NewExtractor(tm)

	// Tokens issued before the role rename carry "NTD" / "UNGVIEN", some
	// with a "ROLE_" prefix.
	for legacy, want := range map[string]domain.Role{
		"NTD":          domain.RoleEmployer,
		"ntd":          domain.RoleEmployer,
		"ROLE_NTD":     domain.RoleEmployer,
		"UNGVIEN":      domain.RoleCandidate,
		"role_ungvien": domain.RoleCandidate,
	} {
		claims := &Claims{
			Role:   legacy,
			UserID: 3,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "dave@example.com",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		outcome := extractor.Extract("Bearer " + token)
		require.True(t, outcome.Ok, "role %q", legacy)
		require.Equal(t, want, outcome.Identity.Role, "role %q", legacy)
	}
}

func TestExtractRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	extractor := NewExtractor(tm)

	claims := &Claims{
		Role: "SUPERUSER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "eve@example.com",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	outcome := extractor.Extract("Bearer " + token)
	require.False(t, outcome.Ok)
}
