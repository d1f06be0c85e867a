package ports

// PasswordHasher produces and checks one-way adaptive password digests.
// Hash embeds a per-call random salt in its output, so hashing the same
// plaintext twice yields different digests that both verify.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Comparison is constant
	// time; a malformed hash yields false, never a panic or an error.
	Verify(plaintext, hash string) bool
}
