package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Error("hash equals the plaintext password")
	}
	if !VerifyPassword(hash, "secret1") {
		t.Error("hash does not verify against the original password")
	}
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword(hash, "secret2") {
		t.Error("wrong password verified")
	}
	if VerifyPassword("not-a-bcrypt-hash", "secret1") {
		t.Error("garbage hash verified")
	}
}
