package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/hotel-reservation/internal/utils" // token verification
)

// CookieAuth returns an Echo middleware that validates the access-token
// cookie and injects the token's email and role claims into the request
// context.  The provided secret must match the one used when issuing
// tokens.  This middleware wraps protected routes so that handlers can
// access authenticated user information via `c.Get("email")` and
// `c.Get("role")`.
//
// The browser presents the token in the `access_token` cookie rather than
// an Authorization header; the cookie is HttpOnly so script on the page
// never sees it.  A missing cookie and an invalid or expired token are both
// authentication failures (401) and are reported with the same wording the
// client already expects.
func CookieAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the access token cookie.  Absence means the client has
            // no session at all.
            cookie, err := c.Cookie("access_token")
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No access token provided"})
            }
            // Verify signature, expiry and that this really is an access
            // token; a refresh token presented here must not pass.
            claims, err := utils.VerifyToken(secret, cookie.Value, utils.TokenTypeAccess)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
            }
            // Store the claims in the context for handlers and downstream
            // middleware.  Both values are plain strings.
            c.Set("email", claims.Email)
            c.Set("role", claims.Role)
            return next(c)
        }
    }
}
