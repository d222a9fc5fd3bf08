package paiement

import (
	"time"

	"gorm.io/gorm"
)

// CommissionPayee est l'historique, en append-only, des commissions réglées.
// Aucune route de modification ni de suppression n'est exposée ; seules
// l'opération de règlement (création) et l'annulation d'un client (purge)
// touchent cette table.
type CommissionPayee struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Référence unique du règlement, générée à la création.
	Reference      string    `gorm:"size:64;uniqueIndex" json:"reference"`
	VenteID        uint      `gorm:"not null;index" json:"venteId"`
	PartenaireID   uint      `gorm:"not null;index" json:"partenaireId"`
	ClientFinalNom string    `gorm:"size:255" json:"clientFinalNom"`
	Montant        float64   `gorm:"not null;default:0" json:"montant"`
	DateEcheance   time.Time `gorm:"not null" json:"dateEcheance"`
	DatePaiement   time.Time `gorm:"not null" json:"datePaiement"`
	PlanType       string    `gorm:"size:50" json:"planType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Migrate crée la table en base.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CommissionPayee{})
}
