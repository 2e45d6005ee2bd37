package helpers

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}

	if err := CheckPasswordHash(hash, "secret123"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "secret124"); err == nil {
		t.Error("password salah diterima")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// Salt acak: dua hash beda, dua-duanya tetap valid.
	if first == second {
		t.Error("dua hash untuk password sama identik, salt tidak jalan")
	}
	if err := CheckPasswordHash(second, "secret123"); err != nil {
		t.Errorf("hash kedua tidak valid: %v", err)
	}
}
