package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted hash from a plaintext password. bcrypt
// embeds a fresh random salt per call, so hashing the same password twice
// yields different stored values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. bcrypt
// recomputes the hash with the stored salt and compares in constant time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
