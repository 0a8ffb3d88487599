package hash

import (
	"golang.org/x/crypto/bcrypt"
)

type (
	HashProvider interface {
		Hash(plain string) (string, error)
		Compare(plain, hashed string) bool
	}

	bcryptProvider struct {
		cost int
	}
)

func NewBcryptProvider() HashProvider {
	return &bcryptProvider{cost: bcrypt.DefaultCost}
}

func (p *bcryptProvider) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (p *bcryptProvider) Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
