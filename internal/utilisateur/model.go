package utilisateur

import (
	"time"

	"gorm.io/gorm"
)

// Utilisateur représente un compte back-office de l'application.
type Utilisateur struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nom        string `gorm:"size:255" json:"nom"`
	Email      string `gorm:"size:255;uniqueIndex" json:"email"`
	MotDePasse string `json:"-"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Migrate crée la table en base.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Utilisateur{})
}
