package echeance

import (
	"time"

	"gorm.io/gorm"
)

// Statuts possibles d'une échéance personnalisée.
const (
	StatutEnAttente = "en_attente"
	StatutPayee     = "payee"
)

// EcheancePersonnalisee représente une échéance d'un plan « Personnalisé » :
// date et montant fixés à la main à la création de la vente.
type EcheancePersonnalisee struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	VenteID      uint       `gorm:"not null;index" json:"venteId"`
	DateEcheance time.Time  `gorm:"not null" json:"date"`
	Commission   float64    `gorm:"not null;default:0" json:"commission"`
	Statut       string     `gorm:"size:50;not null;default:'en_attente';index" json:"statut"`
	DatePaiement *time.Time `json:"datePaiement,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Migrate crée la table en base.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EcheancePersonnalisee{})
}
