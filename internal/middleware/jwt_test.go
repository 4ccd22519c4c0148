package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/utils"
)

const testSecret = "middleware-test-secret"

// run sends a request through the given middleware chain into a handler
// that records the context claims.
func run(t *testing.T, mws []echo.MiddlewareFunc, cookies ...*http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	seen := map[string]any{}
	h := func(c echo.Context) error {
		seen["email"] = c.Get("email")
		seen["role"] = c.Get("role")
		return c.NoContent(http.StatusOK)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h(c))
	return rec, seen
}

func TestCookieAuthMissingCookie(t *testing.T) {
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret)})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCookieAuthInvalidToken(t *testing.T) {
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret)},
		&http.Cookie{Name: "access_token", Value: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCookieAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "a@b.com", "guest", -1)
	require.NoError(t, err)
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret)},
		&http.Cookie{Name: "access_token", Value: tok})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCookieAuthRejectsRefreshClass(t *testing.T) {
	tok, err := utils.NewRefreshToken(testSecret, "a@b.com", "guest", 7)
	require.NoError(t, err)
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret)},
		&http.Cookie{Name: "access_token", Value: tok})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCookieAuthInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "a@b.com", "admin", 15)
	require.NoError(t, err)
	rec, seen := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret)},
		&http.Cookie{Name: "access_token", Value: tok})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", seen["email"])
	assert.Equal(t, "admin", seen["role"])
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "a@b.com", "guest", 15)
	require.NoError(t, err)
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret), RequireRole("admin")},
		&http.Cookie{Name: "access_token", Value: tok})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolePassesAllowedRole(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "admin@hotel.com", "admin", 15)
	require.NoError(t, err)
	rec, _ := run(t, []echo.MiddlewareFunc{CookieAuth(testSecret), RequireRole("admin")},
		&http.Cookie{Name: "access_token", Value: tok})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	rec, _ := run(t, []echo.MiddlewareFunc{RequireRole("admin")})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
