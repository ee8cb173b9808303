package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "password1",
			wantErr:  nil,
		},
		{
			name:     "exactly minimum length",
			password: "12345678",
			wantErr:  nil,
		},
		{
			name:     "too short",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "empty",
			password: "",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "over bcrypt limit",
			password: strings.Repeat("a", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, 4)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("HashPassword() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("HashPassword() unexpected error = %v", err)
			}
			if hash == "" {
				t.Fatal("HashPassword() returned empty hash")
			}
			if hash == tt.password {
				t.Error("hash must not equal the plaintext")
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("password1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("password1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
	if !CheckPassword("password1", first) || !CheckPassword("password1", second) {
		t.Error("both hashes should verify against the original password")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("password1", 99)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword("password1", hash) {
		t.Error("hash created with fallback cost should still verify")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("password1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword("password1", hash) {
		t.Error("correct password should verify")
	}
	if CheckPassword("password2", hash) {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("password1", "not-a-bcrypt-hash") {
		t.Error("malformed hash should not verify")
	}
	if CheckPassword("password1", "") {
		t.Error("empty hash should not verify")
	}
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret() error = %v", err)
	}
	if len(secret) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(secret))
	}

	other, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret() error = %v", err)
	}
	if secret == other {
		t.Error("secrets should be random")
	}
}
