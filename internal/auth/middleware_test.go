package auth

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TienDattttt/job-portal-api/internal/domain"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

func newTestApp(t *testing.T, registerTwice bool) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(testSecret, time.Hour)
	middleware := NewMiddleware(NewExtractor(tm), zap.NewNop())
	policy := defaultPolicy(t)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code})
		},
	})
	app.Use(middleware.Handle)
	if registerTwice {
		app.Use(middleware.Handle)
	}
	app.Use(policy.Handler())

	app.Get("/api/jobs", func(c *fiber.Ctx) error {
		return c.SendString("jobs")
	})
	app.Get("/api/profile", func(c *fiber.Ctx) error {
		id, _ := IdentityFromContext(c)
		return c.SendString(id.Subject)
	})
	app.Post("/api/jobs", func(c *fiber.Ctx) error {
		return c.SendString("created")
	})

	return app, tm
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestMiddlewareAnonymousOnPublicRoute(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, body := doRequest(t, app, "GET", "/api/jobs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "jobs", body)
}

func TestMiddlewareGarbageTokenOnPublicRoute(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, _ := doRequest(t, app, "GET", "/api/jobs", "not.a.token")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsAnonymousOnProtectedRoute(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, _ := doRequest(t, app, "GET", "/api/profile", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsWrongRole(t *testing.T) {
	app, tm := newTestApp(t, false)

	token, _, err := tm.Issue("boss@example.com", domain.RoleEmployer, 4)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "GET", "/api/profile", token)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	app, tm := newTestApp(t, false)

	token, _, err := tm.Issue("ann@example.com", domain.RoleCandidate, 1)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "GET", "/api/profile", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ann@example.com", body)
}

func TestMiddlewareDoubleRegistrationIsIdempotent(t *testing.T) {
	app, tm := newTestApp(t, true)

	token, _, err := tm.Issue("ann@example.com", domain.RoleCandidate, 1)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "GET", "/api/profile", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ann@example.com", body)

	resp, _ = doRequest(t, app, "GET", "/api/profile", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareIsolatesConcurrentIdentities(t *testing.T) {
	app, tm := newTestApp(t, false)

	const workers = 1000
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			subject := fmt.Sprintf("user%d@example.com", n)
			token, _, err := tm.Issue(subject, domain.RoleCandidate, int64(n))
			if err != nil {
				errs <- err
				return
			}

			req := httptest.NewRequest("GET", "/api/profile", nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			resp, err := app.Test(req, -1)
			if err != nil {
				errs <- err
				return
			}
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				errs <- err
				return
			}
			if string(body) != subject {
				errs <- fmt.Errorf("worker %d: got identity %q, want %q", n, body, subject)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
