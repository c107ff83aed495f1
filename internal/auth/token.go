package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// Verification failure kinds. Callers that need to distinguish them use
// errors.Is; the identity extractor collapses all of them into an anonymous
// outcome.
var (
	ErrBadSignature    = errors.New("token signature mismatch")
	ErrExpired         = errors.New("token expired")
	ErrMalformedClaims = errors.New("token claims malformed")
)

// TokenManager issues and verifies signed JWT tokens. The signing key is
// fixed for the process lifetime, so a manager is safe for unlimited
// concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload.
type Claims struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the principal. The subject is the
// account email; expiry is always issuedAt plus the fixed lifetime.
func (tm *TokenManager) Issue(subject string, role domain.Role, userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role:   string(role),
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify parses and validates a token string. It is deterministic and free
// of side effects. Structural problems and claim problems surface as
// ErrMalformedClaims, signature mismatches as ErrBadSignature, and past
// expiry as ErrExpired.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	if strings.Count(tokenStr, ".") != 2 {
		return nil, ErrMalformedClaims
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadSignature
		}
		return tm.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformedClaims
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedClaims
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}
