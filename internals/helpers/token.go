// helpers/token.go

package helpers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie nama cookie sesi. Nilainya "Bearer <jwt>".
const AccessTokenCookie = "access_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
// Prefix "Bearer " tidak dibuang di sini; resolver token yang menangani.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(AccessTokenCookie)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth)
	}
	return ""
}

// SetAccessTokenCookie memasang cookie sesi. MaxAge mengikuti TTL token.
func SetAccessTokenCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    "Bearer " + token,
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
	})
}

// ClearAccessTokenCookie menghapus cookie sesi (logout).
func ClearAccessTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
	})
}
