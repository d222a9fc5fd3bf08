package paiement

import (
	"encoding/json"
	"net/http"
	"sort"

	"gorm.io/gorm"
)

// Handler gère les routes de l'historique des paiements.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ResumePaiements agrège l'historique pour l'affichage : total payé et
// répartition par mois de paiement.
type ResumePaiements struct {
	TotalPaye       float64            `json:"totalPaye"`
	NombrePaiements int                `json:"nombrePaiements"`
	ParMois         map[string]float64 `json:"parMois"`
}

// CalculerResume replie l'historique complet dans un résumé.
func CalculerResume(paiements []CommissionPayee) ResumePaiements {
	resume := ResumePaiements{
		NombrePaiements: len(paiements),
		ParMois:         map[string]float64{},
	}
	for _, p := range paiements {
		resume.TotalPaye += p.Montant
		mois := p.DatePaiement.Format("2006-01")
		resume.ParMois[mois] += p.Montant
	}
	return resume
}

// ListerPaiements retourne l'historique complet.
func (h *Handler) ListerPaiements(w http.ResponseWriter, r *http.Request) {
	paiements, err := h.Repo.ListerToutes()
	if err != nil {
		http.Error(w, "erreur lors de la lecture de l'historique", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(paiements)
}

// Resume retourne le total payé et la répartition mensuelle.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	paiements, err := h.Repo.ListerToutes()
	if err != nil {
		http.Error(w, "erreur lors de la lecture de l'historique", http.StatusInternalServerError)
		return
	}

	resume := CalculerResume(paiements)

	// Réponse annexe : liste des mois triés, pratique côté client.
	mois := make([]string, 0, len(resume.ParMois))
	for m := range resume.ParMois {
		mois = append(mois, m)
	}
	sort.Strings(mois)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		ResumePaiements
		Mois []string `json:"mois"`
	}{resume, mois})
}
