package auth

import "time"

// RefreshToken garde le hash d'un jeton de rafraîchissement émis à la connexion.
type RefreshToken struct {
	ID            uint   `gorm:"primaryKey"`
	UtilisateurID uint   `gorm:"index"`
	Hash          string `gorm:"uniqueIndex"`
	IsAdmin       bool
	ExpiresAt     time.Time `gorm:"index"`
	RevokedAt     *time.Time
	CreatedAt     time.Time
}
