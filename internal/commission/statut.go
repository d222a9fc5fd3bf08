package commission

import (
	"sort"
	"time"

	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
)

// CommissionStatut est une échéance annotée pour l'affichage opérationnel.
type CommissionStatut struct {
	Echeance
	Payee    bool `json:"payee"`
	EnRetard bool `json:"enRetard"`
}

// EtatDesCommissions déroule toutes les échéances de toutes les ventes,
// réglées comprises, annotées de leur statut de règlement et d'un indicateur
// de retard (date d'échéance strictement antérieure au jour courant et
// échéance non réglée). Résultat trié par date d'échéance.
func EtatDesCommissions(ventes []vente.Vente, historique []paiement.CommissionPayee, maintenant time.Time) []CommissionStatut {
	var etats []CommissionStatut

	jourCourant := maintenant.Format(formatJour)
	for _, v := range ventes {
		for _, e := range GenererEcheancier(v) {
			payee := EstReglee(e, historique)
			etats = append(etats, CommissionStatut{
				Echeance: e,
				Payee:    payee,
				EnRetard: !payee && e.DateEcheance.Format(formatJour) < jourCourant,
			})
		}
	}

	sort.SliceStable(etats, func(i, j int) bool {
		return etats[i].DateEcheance.Before(etats[j].DateEcheance)
	})
	return etats
}

// TotalEnAttente somme les échéances non réglées d'un état.
func TotalEnAttente(etats []CommissionStatut) float64 {
	var total float64
	for _, e := range etats {
		if !e.Payee {
			total += e.Montant
		}
	}
	return total
}
