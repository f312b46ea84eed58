package util

import (
	"net/http/httptest"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Error("expected verification failure with the wrong secret")
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc", ""},
		{"no token part", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := ExtractToken(r); got != tt.want {
				t.Errorf("ExtractToken = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the plaintext")
	}
	if !CheckPassword("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
