package partenaire

import (
	"time"

	"gorm.io/gorm"
)

// Partenaire représente un apporteur d'affaires rémunéré à la commission.
type Partenaire struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	NomSociete string `gorm:"size:255;not null" json:"nomSociete"`
	// Taux standard appliqué par défaut aux nouvelles ventes, fraction entre 0 et 1.
	TauxCommissionStandard float64 `gorm:"not null;default:0" json:"tauxCommissionStandard"`
}

// Migrate crée la table en base.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Partenaire{})
}
