package vente

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EcheanceDTO décrit une échéance d'un plan personnalisé dans le payload de création.
type EcheanceDTO struct {
	Date       string  `json:"date" validate:"required"`
	Commission float64 `json:"commission" validate:"gte=0"`
	Statut     string  `json:"statut" validate:"omitempty,oneof=en_attente payee"`
}

// CreateVenteDTO est le payload de création d'une vente.
type CreateVenteDTO struct {
	PartenaireID           uint          `json:"partenaireId" validate:"required"`
	ClientFinalNom         string        `json:"clientFinalNom" validate:"required"`
	MontantTotalVente      float64       `json:"montantTotalVente" validate:"gt=0"`
	TauxCommissionApplique float64       `json:"tauxCommissionApplique" validate:"gte=0,lte=1"`
	DateVente              string        `json:"dateVente" validate:"required"`
	PlanType               string        `json:"planType" validate:"required,oneof=Automatique Personnalisé"`
	NombreEcheances        int           `json:"nombreEcheances"`
	PasEcheance            string        `json:"pasEcheance" validate:"omitempty,oneof=mensuel trimestriel"`
	Echeances              []EcheanceDTO `json:"echeancesPersonnalisees"`
}

// ParseDate accepte une date seule (AAAA-MM-JJ) ou un horodatage RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Valider applique les règles de validation structurelles puis l'invariant de
// plan personnalisé : la somme des échéances doit égaler la commission totale
// à la tolérance près. L'invariant n'est contrôlé qu'à la création.
func (d CreateVenteDTO) Valider() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	if _, err := ParseDate(d.DateVente); err != nil {
		return fmt.Errorf("dateVente invalide: %w", err)
	}

	if d.PlanType == PlanPersonnalise {
		commissionTotale := d.MontantTotalVente * d.TauxCommissionApplique
		return ValiderEcheancesPersonnalisees(commissionTotale, d.Echeances)
	}
	return nil
}

// ValiderEcheancesPersonnalisees vérifie que les échéances couvrent bien la
// commission totale, à ToleranceMontant près.
func ValiderEcheancesPersonnalisees(commissionTotale float64, echeances []EcheanceDTO) error {
	var somme float64
	for _, e := range echeances {
		if _, err := ParseDate(e.Date); err != nil {
			return fmt.Errorf("date d'échéance invalide %q: %w", e.Date, err)
		}
		somme += e.Commission
	}
	if math.Abs(somme-commissionTotale) > ToleranceMontant {
		return errors.New("la somme des échéances personnalisées ne correspond pas à la commission totale")
	}
	return nil
}
