package commission

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/notification"
	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ============================== Handler & DTOs ============================== */

// Handler gère l'état des commissions, le règlement et l'annulation d'un client.
type Handler struct {
	DB        *gorm.DB
	Ventes    *vente.Repository
	Paiements *paiement.Repository
	Echeances *echeance.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:        db,
		Ventes:    vente.NewRepository(db),
		Paiements: paiement.NewRepository(db),
		Echeances: echeance.NewRepository(db),
	}
}

// ReglementDTO identifie l'échéance à régler.
type ReglementDTO struct {
	VenteID        uint    `json:"venteId"`
	PartenaireID   uint    `json:"partenaireId"`
	ClientFinalNom string  `json:"clientFinalNom"`
	Montant        float64 `json:"montant"`
	DateEcheance   string  `json:"dateEcheance"`
	PlanType       string  `json:"planType"`
}

// AnnulationClientDTO identifie la relation partenaire/client à purger.
type AnnulationClientDTO struct {
	PartenaireID   uint   `json:"partenaireId"`
	ClientFinalNom string `json:"clientFinalNom"`
}

/* ============================== Endpoints ============================== */

// Lister traite GET /commissions : toutes les échéances annotées payée/en retard.
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

	etats := EtatDesCommissions(ventes, historique, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Commissions    []CommissionStatut `json:"commissions"`
		TotalEnAttente float64            `json:"totalEnAttente"`
	}{etats, TotalEnAttente(etats)})
}

// Regler traite POST /commissions/reglement : ajoute le paiement à
// l'historique et, pour un plan personnalisé, passe la ligne d'échéance au
// statut « payee ». Les deux écritures partagent la même transaction.
func (h *Handler) Regler(w http.ResponseWriter, r *http.Request) {
	var dto ReglementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formé", http.StatusBadRequest)
		return
	}
	if dto.VenteID == 0 || dto.DateEcheance == "" {
		http.Error(w, "venteId et dateEcheance sont obligatoires", http.StatusBadRequest)
		return
	}

	dateEcheance, err := vente.ParseDate(dto.DateEcheance)
	if err != nil {
		http.Error(w, "dateEcheance invalide", http.StatusBadRequest)
		return
	}

	maintenant := time.Now()
	regle := paiement.CommissionPayee{
		Reference:      uuid.NewString(),
		VenteID:        dto.VenteID,
		PartenaireID:   dto.PartenaireID,
		ClientFinalNom: dto.ClientFinalNom,
		Montant:        dto.Montant,
		DateEcheance:   dateEcheance,
		DatePaiement:   maintenant,
		PlanType:       dto.PlanType,
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "impossible d'ouvrir la transaction", http.StatusInternalServerError)
		return
	}

	if err := h.Paiements.WithDB(tx).Creer(&regle); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de l'enregistrement du paiement", http.StatusInternalServerError)
		return
	}

	// Plan personnalisé : la ligne persistée porte aussi son statut.
	// Plan automatique : rien à muter, le règlement se déduit de l'historique.
	if dto.PlanType == vente.PlanPersonnalise {
		echeances, err := h.Echeances.WithDB(tx).ListerParVente(dto.VenteID)
		if err != nil {
			_ = tx.Rollback()
			http.Error(w, "erreur lors de la lecture des échéances", http.StatusInternalServerError)
			return
		}
		if id, ok := TrouverEcheanceAPayer(echeances, dateEcheance, dto.Montant); ok {
			if err := h.Echeances.WithDB(tx).MarquerPayee(id, maintenant); err != nil {
				_ = tx.Rollback()
				http.Error(w, "erreur lors de la mise à jour de l'échéance", http.StatusInternalServerError)
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la validation de la transaction", http.StatusInternalServerError)
		return
	}

	notification.EnvoyerAlertePaiement(dto.ClientFinalNom, dto.Montant)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(regle)
}

// AnnulerClient traite POST /commissions/annulation-client : supprime toutes
// les ventes du client chez ce partenaire, leurs échéances et son historique
// de paiements, en une transaction.
func (h *Handler) AnnulerClient(w http.ResponseWriter, r *http.Request) {
	var dto AnnulationClientDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formé", http.StatusBadRequest)
		return
	}
	if dto.PartenaireID == 0 || dto.ClientFinalNom == "" {
		http.Error(w, "partenaireId et clientFinalNom sont obligatoires", http.StatusBadRequest)
		return
	}

	ventes, err := h.Ventes.ListerParClient(dto.PartenaireID, dto.ClientFinalNom)
	if err != nil {
		http.Error(w, "erreur lors de la lecture des ventes", http.StatusInternalServerError)
		return
	}

	venteIDs := make([]uint, 0, len(ventes))
	for _, v := range ventes {
		venteIDs = append(venteIDs, v.ID)
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "impossible d'ouvrir la transaction", http.StatusInternalServerError)
		return
	}

	if err := h.Echeances.WithDB(tx).SupprimerParVentes(venteIDs); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la suppression des échéances", http.StatusInternalServerError)
		return
	}
	if len(venteIDs) > 0 {
		if err := tx.Delete(&vente.Vente{}, venteIDs).Error; err != nil {
			_ = tx.Rollback()
			http.Error(w, "erreur lors de la suppression des ventes", http.StatusInternalServerError)
			return
		}
	}
	if err := h.Paiements.WithDB(tx).SupprimerParClient(dto.PartenaireID, dto.ClientFinalNom); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la purge de l'historique", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erreur lors de la validation de la transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"ventesSupprimees": len(venteIDs)})
}
