package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	token, exp, err := tm.Issue("alice@example.com", domain.RoleCandidate, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
	require.Equal(t, string(domain.RoleCandidate), claims.Role)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt.Time)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, _, err := tm.Issue("bob@example.com", domain.RoleEmployer, 7)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	idx := strings.LastIndex(token, ".") + 1
	mutated := []byte(token)
	if mutated[idx] == 'A' {
		mutated[idx] = 'B'
	} else {
		mutated[idx] = 'A'
	}

	_, err = tm.Verify(string(mutated))
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := NewTokenManager(testSecret, time.Hour)
	verifier := NewTokenManager("another-secret-key-of-32-bytes!!", time.Hour)

	token, _, err := issuer.Issue("bob@example.com", domain.RoleEmployer, 7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	// Signed with the right key but already past expiry.
	now := time.Now()
	claims := &Claims{
		Role:   string(domain.RoleCandidate),
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			IssuedAt:  jwt.NewNumericDate(now.Add(-24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	cases := map[string]*Claims{
		"no subject": {
			Role: string(domain.RoleCandidate),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		},
		"no role": {
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice@example.com",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		},
	}

	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = tm.Verify(token)
			require.ErrorIs(t, err, ErrMalformedClaims)
		})
	}
}

func TestVerifyRejectsStructuralGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tm.Verify(token)
		require.ErrorIs(t, err, ErrMalformedClaims, "token %q", token)
	}
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	claims := &Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "root@example.com",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.Error(t, err)
}
