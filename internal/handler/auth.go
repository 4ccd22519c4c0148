package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // sentinel errors returned from the repository
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/hotel-reservation/internal/config" // app configuration
	"github.com/iliyamo/hotel-reservation/internal/model"  // user record and role names
	"github.com/iliyamo/hotel-reservation/internal/utils"  // token issuing and password hashing
)

// UserStore is the slice of the user repository the auth handlers need.
// *repository.UserRepo satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, u model.User, password string, cost int) (uint64, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// AuthHandler bundles dependencies for the signup, login and session
// endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type signupReq struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

type loginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
}

// loginPolicy parametrizes one login endpoint: which role it admits, how it
// looks the account up, and the exact messages its clients expect.  The four
// role-gated login routes are the same flow driven by different rows of this
// table.
type loginPolicy struct {
	role         string // role the stored account must have
	byUsername   bool   // guest tier logs in by username, everyone else by email
	missingMsg   string
	notFoundMsg  string
	badPassMsg   string
	forbiddenMsg string
}

var (
	guestPolicy = loginPolicy{
		role:         model.RoleGuest,
		byUsername:   true,
		missingMsg:   "Both username and password required",
		notFoundMsg:  "User Account not found",
		badPassMsg:   "Incorrect password",
		forbiddenMsg: "Login unsuccessful, only for guest",
	}
	adminPolicy = loginPolicy{
		role:         model.RoleAdmin,
		missingMsg:   "Email and Password required",
		notFoundMsg:  "Account not found",
		badPassMsg:   "Incorrect Password",
		forbiddenMsg: "Login unsuccessful, unauthorized account",
	}
	superAdminPolicy = loginPolicy{
		role:         model.RoleSuperAdmin,
		missingMsg:   "Email and Password required",
		notFoundMsg:  "Account not found",
		badPassMsg:   "Incorrect Password",
		forbiddenMsg: "Unauthorized access",
	}
	staffPolicy = loginPolicy{
		role:         model.RoleStaff,
		missingMsg:   "Email and Password required",
		notFoundMsg:  "Account not found",
		badPassMsg:   "Incorrect Password",
		forbiddenMsg: "Unauthorized",
	}
)

// Signup creates a guest account and opens a session for it right away.
// Email uniqueness is checked before username uniqueness so the client gets
// a field-specific conflict message; the checks are not atomic with the
// insert, so a concurrent duplicate signup can still fail at insert time and
// is reported as a generic error.
func (h *AuthHandler) Signup(c echo.Context) error {
	if !isJSON(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Request must be JSON", "status": "error", "user": nil})
	}
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Request must be JSON", "status": "error", "user": nil})
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
		req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Passwords do not match"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Length of Password must be more than 6"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.FindByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Email already exists", "status": "error", "user": nil})
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error", "status": "error", "user": nil})
	}
	if _, err := h.Users.FindByUsername(ctx, req.Username); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists", "status": "error", "user": nil})
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error", "status": "error", "user": nil})
	}

	u := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Role:      model.RoleGuest,
	}
	if _, err := h.Users.Create(ctx, u, req.Password, h.Cfg.BcryptCost); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error", "status": "error", "user": nil})
	}

	if _, err := h.issueSession(c, req.Email, model.RoleGuest); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create session"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Signup successful",
		"status":  "success",
		"user":    userPart{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email},
	})
}

// Login handles POST /login for the guest tier (username + password).
func (h *AuthHandler) Login(c echo.Context) error { return h.login(c, guestPolicy) }

// AdminLogin handles POST /adminlogin (email + password, role must be admin).
func (h *AuthHandler) AdminLogin(c echo.Context) error { return h.login(c, adminPolicy) }

// SuperAdminLogin handles POST /superadmin.
func (h *AuthHandler) SuperAdminLogin(c echo.Context) error { return h.login(c, superAdminPolicy) }

// StaffLogin handles POST /stafflogin.
func (h *AuthHandler) StaffLogin(c echo.Context) error { return h.login(c, staffPolicy) }

// login is the single flow behind all four login endpoints.  The stored role
// must equal the policy's role even when the credentials are correct.  An
// unknown account and a wrong password both answer 404, which the deployed
// clients depend on.
func (h *AuthHandler) login(c echo.Context, p loginPolicy) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": p.missingMsg})
	}
	key := req.Email
	if p.byUsername {
		key = req.Username
	}
	if key == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": p.missingMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		u   model.User
		err error
	)
	if p.byUsername {
		u, err = h.Users.FindByUsername(ctx, key)
	} else {
		u, err = h.Users.FindByEmail(ctx, key)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": p.notFoundMsg})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something happened, connection error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": p.badPassMsg})
	}
	if u.Role != p.role {
		return c.JSON(http.StatusForbidden, echo.Map{"message": p.forbiddenMsg})
	}

	access, err := h.issueSession(c, u.Email, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create session"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"status":       "success",
		"access_token": access,
		"user": userPart{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
		},
	})
}

// Me resolves the current session from the access-token cookie.  The full
// user record is re-read from the store; when the store errors out the
// response degrades to an identity reconstructed from the token claims so a
// database outage does not log everyone out.
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(accessCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No token provided", "user": nil})
	}
	claims, err := utils.VerifyToken(h.Cfg.JWTSecret, cookie.Value, utils.TokenTypeAccess)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token", "user": nil})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, claims.Email)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found", "user": nil})
	}
	if err != nil {
		// Store unreachable: answer with what the token alone can prove.
		local := claims.Email
		if i := strings.Index(local, "@"); i > 0 {
			local = local[:i]
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": "User found (from token)",
			"user": userPart{
				FirstName: "User",
				LastName:  "",
				Username:  local,
				Email:     claims.Email,
				Role:      claims.Role,
			},
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User found",
		"user": userPart{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
		},
	})
}

// Refresh exchanges a valid refresh-token cookie for a fresh access token.
// The refresh token itself is not rotated; only the access cookie is
// overwritten.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No refresh token provided"})
	}
	claims, err := utils.VerifyToken(h.Cfg.JWTSecret, cookie.Value, utils.TokenTypeRefresh)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid refresh token"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, claims.Email, claims.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Token refresh failed"})
	}
	setTokenCookie(c, accessCookieName, access, h.Cfg.AccessTTLMin*60)
	return c.JSON(http.StatusOK, echo.Map{"message": "Token refreshed", "access_token": access})
}

// Logout clears both session cookies.  It always succeeds, even without a
// session.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearTokenCookie(c, refreshCookieName)
	clearTokenCookie(c, accessCookieName)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out", "status": "success"})
}

// issueSession mints both token classes, sets the session cookies and
// returns the access token for inclusion in the response body.
func (h *AuthHandler) issueSession(c echo.Context, email, role string) (string, error) {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, email, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return "", err
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.JWTSecret, email, role, h.Cfg.RefreshTTLDays)
	if err != nil {
		return "", err
	}
	setTokenCookie(c, refreshCookieName, refresh, h.Cfg.RefreshTTLDays*24*60*60)
	setTokenCookie(c, accessCookieName, access, h.Cfg.AccessTTLMin*60)
	return access, nil
}

// isJSON reports whether the request declares a JSON body.
func isJSON(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationJSON)
}
