package customer

// PasswordHasher abstracts password hashing so the domain never depends on
// a concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
