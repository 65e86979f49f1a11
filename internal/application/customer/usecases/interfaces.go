package usecases

// PasswordHasher hashes customer passwords on create and update. The
// bcrypt-backed implementation lives in the infrastructure layer.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
