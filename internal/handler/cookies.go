package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// cookiePolicy decides the transport attributes of the session cookies based
// on the request's host.  Browsers refuse SameSite=None cookies without the
// Secure flag, and local development runs over plain HTTP, so local origins
// get Lax/insecure cookies while every other host gets None/secure.  No
// Domain attribute is ever set.
func cookiePolicy(c echo.Context) (secure bool, sameSite http.SameSite) {
	host := c.Request().Host
	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		return false, http.SameSiteLaxMode
	}
	return true, http.SameSiteNoneMode
}

// setTokenCookie writes an HTTP-only session cookie scoped to the whole
// site.  maxAge is in seconds and mirrors the lifetime of the token inside.
func setTokenCookie(c echo.Context, name, value string, maxAge int) {
	secure, sameSite := cookiePolicy(c)
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

// clearTokenCookie overwrites a session cookie with an empty, already
// expired value so the browser drops it.
func clearTokenCookie(c echo.Context, name string) {
	secure, sameSite := cookiePolicy(c)
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}
