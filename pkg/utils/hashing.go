package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is above the library default; credential hashing is the one
// place we pay for extra CPU on purpose.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
