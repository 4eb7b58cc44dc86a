package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted adaptive hashes for
// storage and checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same
	// plaintext return different hashes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is
	// (false, nil); an error means hash could not be parsed.
	Verify(plaintext, hash string) (bool, error)
}
