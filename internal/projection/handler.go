package projection

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
	"gorm.io/gorm"
)

// Handler gère la lecture des projections mensuelles.
type Handler struct {
	Ventes    *vente.Repository
	Paiements *paiement.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Ventes:    vente.NewRepository(db),
		Paiements: paiement.NewRepository(db),
	}
}

// Lister traite GET /projections : projections reconstruites à la volée,
// triées par mois croissant.
func (h *Handler) Lister(w http.ResponseWriter, r *http.Request) {
	ventes, err := h.Ventes.ListerToutes()
	if err != nil {
		http.Error(w, "erreur lors de la lecture des ventes", http.StatusInternalServerError)
		return
	}
	historique, err := h.Paiements.ListerToutes()
	if err != nil {
		http.Error(w, "erreur lors de la lecture de l'historique", http.StatusInternalServerError)
		return
	}

	parMois := Generer(ventes, historique)

	mois := make([]string, 0, len(parMois))
	for m := range parMois {
		mois = append(mois, m)
	}
	sort.Strings(mois)

	liste := make([]Projection, 0, len(mois))
	for _, m := range mois {
		liste = append(liste, parMois[m])
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(liste)
}
