package helpers

import "testing"

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "anna", "anna@example.com", "secret1", ""},
		{"password pendek", "anna", "anna@example.com", "12345", "Password must be at least 6 characters"},
		{"username kosong", "   ", "anna@example.com", "secret1", "Username is required"},
		{"email rusak", "anna", "not-an-email", "secret1", "Invalid email format"},
		// Password dicek duluan walau field lain juga salah.
		{"password pendek menang", "", "not-an-email", "123", "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		err := ValidateRegisterInput(tt.username, tt.email, tt.password)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: error tak terduga: %v", tt.name, err)
			}
			continue
		}
		if err == nil || err.Error() != tt.wantErr {
			t.Errorf("%s: error = %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("anna", "secret1"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateLoginInput("", "secret1"); err == nil {
		t.Error("username kosong diterima")
	}
	if err := ValidateLoginInput("anna", ""); err == nil {
		t.Error("password kosong diterima")
	}
}
