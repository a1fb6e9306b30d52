package auth

import "testing"

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for repeated input, got identical values")
	}
	if !CheckPassword(h1, "secret1") {
		t.Fatalf("first hash should verify against the original password")
	}
	if !CheckPassword(h2, "secret1") {
		t.Fatalf("second hash should verify against the original password")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword(h, "secret2") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-hash", "secret1") {
		t.Fatalf("garbage stored value must not verify")
	}
}
