package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(authHeader string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c
}

func TestExtractBearerTokenMissingHeader(t *testing.T) {
	c := newTestContext("")
	_, err := ExtractBearerToken(c)
	if err != ErrMissingHeader {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
}

func TestExtractBearerTokenInvalidFormat(t *testing.T) {
	cases := []string{"Basic abc123", "Bearer", "token-without-scheme"}
	for _, header := range cases {
		c := newTestContext(header)
		_, err := ExtractBearerToken(c)
		if err != ErrInvalidFormat {
			t.Fatalf("header %q: expected ErrInvalidFormat, got %v", header, err)
		}
	}
}

func TestExtractBearerTokenEmptyToken(t *testing.T) {
	c := newTestContext("Bearer   ")
	_, err := ExtractBearerToken(c)
	if err != ErrEmptyToken {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestExtractBearerTokenCaseInsensitiveScheme(t *testing.T) {
	for _, header := range []string{"Bearer token-1", "bearer token-1", "BEARER token-1"} {
		c := newTestContext(header)
		token, err := ExtractBearerToken(c)
		if err != nil {
			t.Fatalf("header %q: unexpected error %v", header, err)
		}
		if token != "token-1" {
			t.Fatalf("header %q: expected token-1, got %q", header, token)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatalf("expected password to match its hash")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatalf("expected mismatch for wrong password")
	}
}
