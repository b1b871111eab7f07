package middleware

// identity.go holds the helper that resolves the caller's identity for
// per-user rate limiting keys.  JWTAuth stores the token subject in the
// context as "user_id"; unauthenticated requests fall back to "anon" so
// guests share one bucket per IP.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's identifier as a string,
// or "anon" when the request carries no valid token.  The JWT subject is
// a numeric claim, so both string and float64 representations are
// handled.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case float64:
        return fmt.Sprintf("%.0f", v)
    case uint64:
        return fmt.Sprintf("%d", v)
    }
    return "anon"
}
