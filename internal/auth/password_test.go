package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Fatal("expected correct password to verify")
	}
	if CheckPassword(hash, "hunter23") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Fatal("expected verification against a garbage hash to fail")
	}
}
