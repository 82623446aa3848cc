package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("secret1", hash) {
		t.Fatal("correct password did not verify")
	}
	if CheckPassword("secret2", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ")
	}
	if !CheckPassword("secret1", h1) || !CheckPassword("secret1", h2) {
		t.Fatal("both hashes should verify against the original password")
	}
}
