package partenaire

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gère les routes des partenaires.
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

// CreerPartenaire enregistre un nouveau partenaire.
func (h *Handler) CreerPartenaire(w http.ResponseWriter, r *http.Request) {
	var dto PartenaireDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := dto.Valider(); err != nil {
		http.Error(w, "données partenaire invalides", http.StatusBadRequest)
		return
	}

	p := Partenaire{
		NomSociete:             dto.NomSociete,
		TauxCommissionStandard: dto.TauxCommissionStandard,
	}
	if err := h.Repo.Creer(&p); err != nil {
		http.Error(w, "erreur lors de la création du partenaire", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// ListerPartenaires retourne tous les partenaires.
func (h *Handler) ListerPartenaires(w http.ResponseWriter, r *http.Request) {
	partenaires, err := h.Repo.ListerTous()
	if err != nil {
		http.Error(w, "erreur lors de la lecture des partenaires", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(partenaires)
}

// TrouverParID retourne un partenaire.
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.TrouverParID(uint(id))
	if err != nil {
		http.Error(w, "partenaire introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// MettreAJourPartenaire modifie le nom et le taux standard.
func (h *Handler) MettreAJourPartenaire(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	existant, err := h.Repo.TrouverParID(uint(id))
	if err != nil {
		http.Error(w, "partenaire introuvable", http.StatusNotFound)
		return
	}

	var dto PartenaireDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := dto.Valider(); err != nil {
		http.Error(w, "données partenaire invalides", http.StatusBadRequest)
		return
	}

	existant.NomSociete = dto.NomSociete
	existant.TauxCommissionStandard = dto.TauxCommissionStandard
	if err := h.Repo.MettreAJour(existant); err != nil {
		http.Error(w, "erreur lors de la mise à jour du partenaire", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existant)
}

// SupprimerPartenaire refuse la suppression tant que des ventes référencent le partenaire.
func (h *Handler) SupprimerPartenaire(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	n, err := h.Repo.CompterVentes(uint(id))
	if err != nil {
		http.Error(w, "erreur lors de la vérification des ventes", http.StatusInternalServerError)
		return
	}
	if n > 0 {
		http.Error(w, "impossible de supprimer ce partenaire : des ventes lui sont associées", http.StatusConflict)
		return
	}

	if err := h.Repo.Supprimer(uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression du partenaire", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
