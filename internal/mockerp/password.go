package mockerp

import "golang.org/x/crypto/bcrypt"

// hashPassword hashes a plaintext password for newly registered
// accounts. Seeded accounts use the configured cost instead.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
