package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("Secret123", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("Secret124", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestBcryptHasher_SaltRandomization(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ")
	}
	if !h.Verify("Secret123", first) || !h.Verify("Secret123", second) {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if h.Verify("Secret123", malformed) {
			t.Fatalf("malformed hash %q must not verify", malformed)
		}
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	// out-of-range costs fall back to the bcrypt default instead of failing
	h := NewBcryptHasher(99)
	hash, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("Secret123", hash) {
		t.Fatalf("expected hash from fallback cost to verify")
	}
}
