package auth

import "golang.org/x/crypto/bcrypt"

// hashCost stays at the bcrypt default. Raising it only takes effect for new
// hashes; existing credentials keep working because the cost is encoded in
// the hash itself.
const hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored for a credential. Password
// strength rules live on the registration request, not here.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
