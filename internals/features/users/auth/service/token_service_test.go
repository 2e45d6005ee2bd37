package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
)

func setTestSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestCreateAndResolveToken(t *testing.T) {
	setTestSecret(t, "test-secret")

	token, err := CreateAccessToken("anna", 30*time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	username, ok := ResolveUsername(token)
	if !ok {
		t.Fatal("token valid tidak ter-resolve")
	}
	if username != "anna" {
		t.Errorf("username = %q, want %q", username, "anna")
	}
}

func TestResolveTokenWithBearerPrefix(t *testing.T) {
	setTestSecret(t, "test-secret")

	token, err := CreateAccessToken("anna", 30*time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	// Nilai cookie disimpan sebagai "Bearer <token>".
	username, ok := ResolveUsername("Bearer " + token)
	if !ok || username != "anna" {
		t.Errorf("ResolveUsername dengan prefix Bearer = (%q, %v), want (anna, true)", username, ok)
	}
}

func TestResolveTokenNoneCases(t *testing.T) {
	setTestSecret(t, "test-secret")

	goodToken, err := CreateAccessToken("anna", 30*time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	// Token ditandatangani key lain.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "anna",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	foreignToken, err := foreign.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}

	// Token kadaluarsa, key benar.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "anna",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	// Token tanpa sub.
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubToken, err := noSub.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign no-sub token: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"cookie kosong", ""},
		{"token rusak", "Bearer not.a.jwt"},
		{"potongan token valid", goodToken[:len(goodToken)-5]},
		{"signature beda key", foreignToken},
		{"token kadaluarsa", expiredToken},
		{"tanpa sub", noSubToken},
	}
	for _, tt := range tests {
		if username, ok := ResolveUsername(tt.raw); ok {
			t.Errorf("%s: ResolveUsername = (%q, true), want none", tt.name, username)
		}
	}
}

func TestCreateTokenWithoutSecret(t *testing.T) {
	setTestSecret(t, "")

	if _, err := CreateAccessToken("anna", time.Minute); err == nil {
		t.Error("CreateAccessToken tanpa JWT_SECRET harus gagal")
	}
	if _, ok := ResolveUsername("Bearer whatever"); ok {
		t.Error("ResolveUsername tanpa JWT_SECRET harus none")
	}
}
