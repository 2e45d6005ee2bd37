package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
)

const bearerPrefix = "Bearer "

func nowUTC() time.Time { return time.Now().UTC() }

// CreateAccessToken membuat JWT HS256 berisi username (sub) dan expiry absolut.
func CreateAccessToken(username string, ttl time.Duration) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	if ttl <= 0 {
		ttl = configs.AccessTokenTTL()
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"typ": "access",
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ResolveUsername memverifikasi tanda tangan + expiry dan mengembalikan username.
// Cookie kosong, token rusak, signature beda, atau token kadaluarsa semuanya
// menghasilkan ok=false — caller memperlakukan "tanpa identitas" secara seragam,
// bukan sebagai error.
func ResolveUsername(raw string) (string, bool) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), bearerPrefix))
	if raw == "" {
		return "", false
	}
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", false
	}
	return sub, true
}
