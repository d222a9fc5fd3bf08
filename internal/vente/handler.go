package vente

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gère les routes des ventes.
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

// CreerVente enregistre une vente et, pour un plan personnalisé, ses échéances,
// dans une même transaction. La commission totale est calculée ici une fois
// pour toutes.
func (h *Handler) CreerVente(w http.ResponseWriter, r *http.Request) {
	var dto CreateVenteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formé", http.StatusBadRequest)
		return
	}

	if err := dto.Valider(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	dateVente, err := ParseDate(dto.DateVente)
	if err != nil {
		http.Error(w, "dateVente invalide", http.StatusBadRequest)
		return
	}

	v := Vente{
		PartenaireID:           dto.PartenaireID,
		ClientFinalNom:         dto.ClientFinalNom,
		MontantTotalVente:      dto.MontantTotalVente,
		TauxCommissionApplique: dto.TauxCommissionApplique,
		DateVente:              dateVente,
		MontantCommissionTotal: dto.MontantTotalVente * dto.TauxCommissionApplique,
		PlanType:               dto.PlanType,
		NombreEcheances:        dto.NombreEcheances,
		PasEcheance:            dto.PasEcheance,
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "impossible d'ouvrir la transaction", http.StatusInternalServerError)
		return
	}

	if err := tx.Create(&v).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la création de la vente", http.StatusInternalServerError)
		return
	}

	if dto.PlanType == PlanPersonnalise {
		echeances := make([]*echeance.EcheancePersonnalisee, 0, len(dto.Echeances))
		for _, e := range dto.Echeances {
			date, _ := ParseDate(e.Date) // déjà validée dans Valider()
			statut := e.Statut
			if statut == "" {
				statut = echeance.StatutEnAttente
			}
			echeances = append(echeances, &echeance.EcheancePersonnalisee{
				VenteID:      v.ID,
				DateEcheance: date,
				Commission:   e.Commission,
				Statut:       statut,
			})
		}
		if err := echeance.NewRepository(tx).CreerEnLot(echeances); err != nil {
			_ = tx.Rollback()
			http.Error(w, "erreur lors de la création des échéances", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la validation de la transaction", http.StatusInternalServerError)
		return
	}

	// Recharge hors transaction avec les échéances.
	creee, err := h.Repo.TrouverParID(v.ID)
	if err != nil {
		http.Error(w, "erreur lors du rechargement de la vente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(creee)
}

// ListerVentes retourne toutes les ventes.
func (h *Handler) ListerVentes(w http.ResponseWriter, r *http.Request) {
	ventes, err := h.Repo.ListerToutes()
	if err != nil {
		http.Error(w, "erreur lors de la lecture des ventes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ventes)
}

// TrouverParID retourne une vente avec ses échéances.
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.TrouverParID(uint(id))
	if err != nil {
		http.Error(w, "vente introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ListerParPartenaire retourne les ventes d'un partenaire.
func (h *Handler) ListerParPartenaire(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	ventes, err := h.Repo.ListerParPartenaire(uint(id))
	if err != nil {
		http.Error(w, "erreur lors de la lecture des ventes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ventes)
}

// SupprimerVente efface une vente et ses échéances.
func (h *Handler) SupprimerVente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "impossible d'ouvrir la transaction", http.StatusInternalServerError)
		return
	}

	if err := echeance.NewRepository(tx).SupprimerParVentes([]uint{uint(id)}); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la suppression des échéances", http.StatusInternalServerError)
		return
	}
	if err := tx.Delete(&Vente{}, uint(id)).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la suppression de la vente", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la validation de la transaction", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
