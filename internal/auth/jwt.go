package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims du jeton d'accès (RBAC simple : IsAdmin)
type Claims struct {
	UtilisateurID uint `json:"utilisateurId"`
	IsAdmin       bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Durée de vie du jeton d'accès
const AccessTTL = 15 * time.Minute

func secretJWT() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET non définie")
	}
	return []byte(s), nil
}

// GenererToken signe un JWT HS256 avec exp, iat et sub.
func GenererToken(utilisateurID uint, isAdmin bool) (string, error) {
	secret, err := secretJWT()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UtilisateurID: utilisateurID,
		IsAdmin:       isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(utilisateurID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValiderToken vérifie la signature et l'expiration, et retourne les claims.
func ValiderToken(tokenStr string) (*Claims, error) {
	secret, err := secretJWT()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token invalide ou expiré: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims invalides")
	}
	return claims, nil
}
