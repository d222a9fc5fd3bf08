package utils

import "golang.org/x/crypto/bcrypt"

// HasherMotDePasse retourne le hash bcrypt du mot de passe en clair.
func HasherMotDePasse(motDePasse string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(motDePasse), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifierMotDePasse compare un hash bcrypt avec le mot de passe en clair.
func VerifierMotDePasse(hash, motDePasse string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(motDePasse))
	return err == nil
}
