package service

import "golang.org/x/crypto/bcrypt"

// Costo fijo de bcrypt; subirlo encarece cada login y cada registro.
const bcryptCost = 10

// HashPassword deriva un digest bcrypt autodescriptivo del password.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword compara un password en claro contra un digest bcrypt.
// Nunca devuelve error por mismatch, solo false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
