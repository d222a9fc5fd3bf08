package commission

import (
	"math"
	"time"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
)

// EstReglee détermine si une échéance est déjà réglée : soit un paiement de
// l'historique la couvre (même vente, même jour d'échéance, montant à la
// tolérance près), soit — plan personnalisé — la ligne porte déjà le statut
// « payee ». Le double contrôle rend la détection robuste aux données
// migrées où l'historique et le statut ne se recouvrent pas.
func EstReglee(e Echeance, historique []paiement.CommissionPayee) bool {
	if e.MarqueePayee {
		return true
	}
	for _, p := range historique {
		if p.VenteID == e.VenteID &&
			MemeJour(p.DateEcheance, e.DateEcheance) &&
			math.Abs(p.Montant-e.Montant) < vente.ToleranceMontant {
			return true
		}
	}
	return false
}

// TrouverEcheanceAPayer cherche, dans les lignes persistées d'un plan
// personnalisé, l'échéance visée par un règlement : même jour et montant à la
// tolérance près. Retourne l'ID de la première ligne encore en attente qui
// correspond.
func TrouverEcheanceAPayer(echeances []echeance.EcheancePersonnalisee, dateEcheance time.Time, montant float64) (uint, bool) {
	for _, e := range echeances {
		if e.Statut == echeance.StatutPayee {
			continue
		}
		if MemeJour(e.DateEcheance, dateEcheance) &&
			math.Abs(e.Commission-montant) < vente.ToleranceMontant {
			return e.ID, true
		}
	}
	return 0, false
}
