package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordScheme abstracts how passwords are stored and checked. The default
// scheme stores the password exactly as provided and compares by equality,
// matching the behavior the user service has always had; bcrypt can be opted
// into via configuration.
type PasswordScheme interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// PlainScheme stores passwords verbatim and compares by string equality.
type PlainScheme struct{}

func (PlainScheme) Hash(plain string) (string, error) { return plain, nil }

func (PlainScheme) Verify(stored, plain string) bool { return stored == plain }

// BcryptScheme hashes passwords with bcrypt at the default cost.
type BcryptScheme struct{}

func (BcryptScheme) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// PasswordSchemeFromName resolves a configured scheme name. Anything other
// than "bcrypt" falls back to the plain scheme.
func PasswordSchemeFromName(name string) PasswordScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlainScheme{}
}
