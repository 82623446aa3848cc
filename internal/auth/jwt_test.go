package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("got id %d, want 42", id)
	}
}

func TestExpiredToken(t *testing.T) {
	tok, err := GenerateToken(7, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestWrongSecret(t *testing.T) {
	tok, err := GenerateToken(7, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(tok, []byte("other-secret")); err == nil {
		t.Fatal("expected bad signature to fail")
	}
}

func TestMalformedToken(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(tok, testSecret); err == nil {
			t.Fatalf("expected %q to fail", tok)
		}
	}
}
