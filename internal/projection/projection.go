package projection

import (
	"github.com/appli-facturation/api-commissions/internal/commission"
	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
)

// Projection résume les encaissements attendus sur un mois calendaire.
type Projection struct {
	MoisAnnee     string           `json:"moisAnnee"`
	TotalGlobal   float64          `json:"totalGlobal"`
	ParPartenaire map[uint]float64 `json:"parPartenaire"`
	// Ventes contribuant à ce mois, dédoublonnées par identifiant.
	VentesDetails []vente.Vente `json:"ventesDetails"`
}

// Generer replie toutes les échéances non réglées dans une table indexée par
// mois (AAAA-MM). Fonction pure de (ventes, historique) : reconstruction
// complète à chaque appel, aucun état conservé entre deux lectures.
func Generer(ventes []vente.Vente, historique []paiement.CommissionPayee) map[string]Projection {
	projections := map[string]Projection{}

	for _, v := range ventes {
		for _, e := range commission.GenererEcheancier(v) {
			if commission.EstReglee(e, historique) {
				continue
			}

			mois := e.DateEcheance.Format("2006-01")
			p, ok := projections[mois]
			if !ok {
				p = Projection{
					MoisAnnee:     mois,
					ParPartenaire: map[uint]float64{},
				}
			}

			p.TotalGlobal += e.Montant
			p.ParPartenaire[v.PartenaireID] += e.Montant

			deja := false
			for _, d := range p.VentesDetails {
				if d.ID == v.ID {
					deja = true
					break
				}
			}
			if !deja {
				p.VentesDetails = append(p.VentesDetails, v)
			}

			projections[mois] = p
		}
	}

	return projections
}
