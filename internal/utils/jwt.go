package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for token verification failures
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Token type markers embedded in the "typ" claim.  Access tokens are
// short‑lived and authorize API calls; refresh tokens are long‑lived and are
// only good for minting new access tokens.  Verification always checks the
// marker so one class can never be presented as the other.
const (
    TokenTypeAccess  = "access"
    TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned by VerifyToken for any verification failure:
// bad signature, unexpected algorithm, expired token or a token type that
// does not match what the caller expects.  Callers treat it as a recoverable
// authentication failure, never as a server error.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the identity data embedded in a verified token.  Tokens are
// self contained; nothing is stored server side.
type Claims struct {
    Email string // subject's email address
    Role  string // privilege tier (guest, staff, admin, superadmin)
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user's email and role, and a TTL in minutes.  The JWT
// carries the email, role, token type, expiration (exp) and issued at (iat)
// claims.
func NewAccessToken(secret, email, role string, ttlMin int) (string, error) {
    return signToken(secret, email, role, TokenTypeAccess,
        time.Duration(ttlMin)*time.Minute)
}

// NewRefreshToken is the long‑lived counterpart of NewAccessToken.  The
// ttlDays parameter controls how many days the refresh token is valid.
func NewRefreshToken(secret, email, role string, ttlDays int) (string, error) {
    return signToken(secret, email, role, TokenTypeRefresh,
        time.Duration(ttlDays)*24*time.Hour)
}

// signToken builds the claim set shared by both token classes and signs it.
func signToken(secret, email, role, typ string, ttl time.Duration) (string, error) {
    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "email": email,
        "role":  role,
        "typ":   typ,
        "exp":   now.Add(ttl).Unix(),
        "iat":   now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// VerifyToken parses and validates a signed token and checks that its type
// marker matches wantType.  The current time must be strictly before the
// embedded expiry.  On any failure ErrInvalidToken is returned; the caller
// learns nothing about which check failed.
func VerifyToken(secret, raw, wantType string) (Claims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything other than HMAC; without this
        // check a token declaring alg=none would pass.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Claims{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Claims{}, ErrInvalidToken
    }
    typ, _ := claims["typ"].(string)
    if typ != wantType {
        return Claims{}, ErrInvalidToken
    }
    email, _ := claims["email"].(string)
    role, _ := claims["role"].(string)
    if email == "" || role == "" {
        return Claims{}, ErrInvalidToken
    }
    return Claims{Email: email, Role: role}, nil
}
