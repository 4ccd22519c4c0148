package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hotel-reservation/internal/middleware" // import middleware for cookie authentication and role enforcement
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/health", handler.Health)
}

// RegisterAuth registers the signup, login and session routes.  The login
// endpoints are role-gated variants of one flow; none of them require an
// existing session.  /me and /refresh authenticate via cookies inside the
// handler because their failure bodies differ from the middleware's.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	// Account creation; new accounts always carry the guest role.
	e.POST("/signup", a.Signup)
	// Guest login keys on username; the elevated tiers key on email.
	e.POST("/login", a.Login)
	e.POST("/adminlogin", a.AdminLogin)
	e.POST("/superadmin", a.SuperAdminLogin)
	e.POST("/stafflogin", a.StaffLogin)
	// Session inspection and renewal, both driven by cookies.
	e.GET("/me", a.Me)
	e.POST("/refresh", a.Refresh)
	// Logout clears cookies unconditionally and never fails.
	e.POST("/logout", a.Logout)
}

// RegisterBookings registers the booking endpoints.  Creating a booking
// requires any valid access token; the admin surface additionally requires
// the admin role and sits behind the Redis response cache for its two read
// endpoints.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, cfg config.Config, cacheCfg config.CacheConfig, rdb *redis.Client) {
	// Any authenticated user may create a booking.
	booking := e.Group("", middleware.CookieAuth(cfg.JWTSecret))
	booking.POST("/hotel_booking", b.Create)

	// Admin dashboard: access cookie plus the admin role.
	admin := e.Group("/admin",
		middleware.CookieAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleAdmin))
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	admin.GET("/dashboard/stats", b.Stats, cache)
	admin.GET("/bookings", b.List, cache)
	admin.PUT("/bookings/:id/status", b.UpdateStatus)
}
