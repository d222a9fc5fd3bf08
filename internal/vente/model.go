package vente

import (
	"time"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"gorm.io/gorm"
)

// Types de plan de versement d'une vente.
const (
	PlanAutomatique  = "Automatique"
	PlanPersonnalise = "Personnalisé"
)

// Pas entre deux échéances d'un plan automatique.
const (
	PasMensuel     = "mensuel"
	PasTrimestriel = "trimestriel"
)

// ToleranceMontant est l'écart absolu admis entre deux montants de commission.
// Les montants sont issus de multiplications/divisions en flottant ; une
// égalité stricte rejetterait des montants identiques au centime près.
const ToleranceMontant = 0.02

// Vente représente une transaction apportée par un partenaire, génératrice
// d'une commission étalée en échéances.
type Vente struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PartenaireID      uint      `gorm:"not null;index" json:"partenaireId"`
	ClientFinalNom    string    `gorm:"size:255;not null" json:"clientFinalNom"`
	MontantTotalVente float64   `gorm:"not null;default:0" json:"montantTotalVente"`
	// Taux appliqué à cette vente, fraction entre 0 et 1 ; peut différer du
	// taux standard du partenaire.
	TauxCommissionApplique float64   `gorm:"not null;default:0" json:"tauxCommissionApplique"`
	DateVente              time.Time `gorm:"not null" json:"dateVente"`
	// Calculé une seule fois à la création (montant × taux), jamais recalculé.
	MontantCommissionTotal float64 `gorm:"not null;default:0" json:"montantCommissionTotal"`

	PlanType string `gorm:"size:50;not null" json:"planType"`

	// Plan automatique uniquement.
	NombreEcheances int    `gorm:"not null;default:0" json:"nombreEcheances,omitempty"`
	PasEcheance     string `gorm:"size:50" json:"pasEcheance,omitempty"`

	// Plan personnalisé uniquement.
	Echeances []echeance.EcheancePersonnalisee `gorm:"foreignKey:VenteID;constraint:OnDelete:CASCADE" json:"echeancesPersonnalisees,omitempty"`
}

// Migrate crée la table en base.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vente{})
}
