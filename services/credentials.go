package services

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks a presented secret against a stored credential.
// The storage format stays swappable without touching the login handler.
type CredentialVerifier interface {
	Verify(storedHash, presented string) error
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(storedHash, presented string) error {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(presented))
}
