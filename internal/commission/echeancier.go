package commission

import (
	"fmt"
	"sort"
	"time"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/vente"
)

const formatJour = "2006-01-02"

// Echeance est une échéance de commission dérivée d'une vente : ligne
// persistée pour un plan personnalisé, ligne recalculée à chaque lecture pour
// un plan automatique.
type Echeance struct {
	ID             string    `json:"id"`
	VenteID        uint      `json:"venteId"`
	PartenaireID   uint      `json:"partenaireId"`
	ClientFinalNom string    `json:"clientFinalNom"`
	PlanType       string    `json:"planType"`
	Montant        float64   `json:"montant"`
	DateEcheance   time.Time `json:"dateEcheance"`

	// MarqueePayee reprend le statut « payee » porté par une échéance
	// personnalisée ; toujours false pour un plan automatique.
	MarqueePayee bool `json:"-"`
}

// MemeJour compare deux dates au jour calendaire près, l'heure étant ignorée.
func MemeJour(a, b time.Time) bool {
	return a.Format(formatJour) == b.Format(formatJour)
}

func dernierJourDuMois(annee int, mois time.Month) int {
	// Jour zéro du mois suivant = dernier jour du mois courant.
	return time.Date(annee, mois+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AjouterMois avance une date de n mois en conservant le jour du mois.
// Si le jour n'existe pas dans le mois d'arrivée (31 janvier + 1 mois),
// la date est ramenée au dernier jour de ce mois.
func AjouterMois(date time.Time, n int) time.Time {
	annee, mois, jour := date.Date()
	cible := time.Date(annee, mois+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	if dernier := dernierJourDuMois(cible.Year(), cible.Month()); jour > dernier {
		jour = dernier
	}
	return time.Date(cible.Year(), cible.Month(), jour, 0, 0, 0, 0, date.Location())
}

// GenererEcheancier déroule le plan de versement d'une vente en échéances
// triées par date. Fonction totale : un plan incomplet (nombre d'échéances ou
// pas manquant, liste personnalisée vide) produit un échéancier vide, jamais
// une erreur.
func GenererEcheancier(v vente.Vente) []Echeance {
	var echeances []Echeance

	switch v.PlanType {
	case vente.PlanPersonnalise:
		// Restitution à l'identique des lignes persistées, sans recalcul.
		for i, e := range v.Echeances {
			id := fmt.Sprint(e.ID)
			if e.ID == 0 {
				id = fmt.Sprintf("%d_%d", v.ID, i)
			}
			echeances = append(echeances, Echeance{
				ID:             id,
				VenteID:        v.ID,
				PartenaireID:   v.PartenaireID,
				ClientFinalNom: v.ClientFinalNom,
				PlanType:       v.PlanType,
				Montant:        e.Commission,
				DateEcheance:   e.DateEcheance,
				MarqueePayee:   e.Statut == echeance.StatutPayee,
			})
		}

	case vente.PlanAutomatique:
		if v.NombreEcheances <= 0 {
			return nil
		}
		pas := 0
		switch v.PasEcheance {
		case vente.PasMensuel:
			pas = 1
		case vente.PasTrimestriel:
			pas = 3
		default:
			return nil
		}

		// Répartition égale, sans report d'arrondi sur la dernière échéance.
		montant := v.MontantCommissionTotal / float64(v.NombreEcheances)
		for i := 1; i <= v.NombreEcheances; i++ {
			echeances = append(echeances, Echeance{
				ID:             fmt.Sprintf("%d_auto_%d", v.ID, i),
				VenteID:        v.ID,
				PartenaireID:   v.PartenaireID,
				ClientFinalNom: v.ClientFinalNom,
				PlanType:       v.PlanType,
				Montant:        montant,
				DateEcheance:   AjouterMois(v.DateVente, i*pas),
			})
		}
	}

	sort.SliceStable(echeances, func(i, j int) bool {
		return echeances[i].DateEcheance.Before(echeances[j].DateEcheance)
	})
	return echeances
}
