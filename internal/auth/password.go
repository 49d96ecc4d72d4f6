// Package auth holds password storage strategies.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/alexedwards/argon2id"
)

const (
	HashingPlain    = "plain"
	HashingArgon2id = "argon2id"
)

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, stored string) (bool, error)
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (PasswordHasher, error) {
	switch name {
	case "", HashingPlain:
		return Plain{}, nil
	case HashingArgon2id:
		return Argon2id{Params: argon2id.DefaultParams}, nil
	default:
		return nil, fmt.Errorf("internal/auth: unknown password hashing %q", name)
	}
}

// Plain stores passwords as given and compares them for equality.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Compare(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}

// Argon2id stores an encoded argon2id hash.
type Argon2id struct {
	Params *argon2id.Params
}

func (a Argon2id) Hash(password string) (string, error) {
	hashed, err := argon2id.CreateHash(password, a.Params)
	if err != nil {
		return "", fmt.Errorf("internal/auth: pw hash failed: %w", err)
	}

	return hashed, nil
}

func (a Argon2id) Compare(password, stored string) (bool, error) {
	isMatch, err := argon2id.ComparePasswordAndHash(password, stored)
	if err != nil {
		return false, fmt.Errorf("internal/auth: pw and hash comparison failed: %w", err)
	}

	return isMatch, nil
}
