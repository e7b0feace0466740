package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against a stored hash.
type PasswordHasher interface {
	// Hash returns a salted bcrypt hash of plaintext. Two calls with the
	// same input produce different hashes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. Any malformed hash is
	// treated as a mismatch.
	Verify(plaintext, hash string) bool
}

// TokenGenerator produces opaque single-use secrets such as password reset
// tokens.
type TokenGenerator interface {
	// Generate returns a fresh hex-encoded random token.
	Generate() (string, error)
}
