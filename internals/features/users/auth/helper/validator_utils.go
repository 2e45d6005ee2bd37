package helpers

import (
	"errors"
	"regexp"
	"strings"
)

// MinPasswordLength panjang minimal password saat registrasi.
const MinPasswordLength = 6

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateRegisterInput memeriksa form registrasi.
// Urutan cek mengikuti alur: panjang password dulu, baru format field lain.
func ValidateRegisterInput(username, email, password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("Password must be at least 6 characters")
	}
	if strings.TrimSpace(username) == "" {
		return errors.New("Username is required")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("Invalid email format")
	}
	return nil
}

// ValidateLoginInput memeriksa form login.
func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.New("Username and password are required")
	}
	return nil
}
