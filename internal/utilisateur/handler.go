package utilisateur

import (
	"encoding/json"
	"net/http"

	"github.com/appli-facturation/api-commissions/internal/auth"
	"github.com/appli-facturation/api-commissions/internal/utils"
	"gorm.io/gorm"
)

// DTOs de requête
type LoginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

type createUtilisateurRequest struct {
	Nom        string `json:"nom"`
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Handler encapsule DB et repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Login vérifie les identifiants et émet un couple access/refresh.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.TrouverParEmail(req.Email)
	if err != nil {
		http.Error(w, "identifiants invalides", http.StatusUnauthorized)
		return
	}

	if !utils.VerifierMotDePasse(user.MotDePasse, req.MotDePasse) {
		http.Error(w, "mot de passe incorrect", http.StatusUnauthorized)
		return
	}

	token, err := auth.EmettreJetonsConnexion(h.DB, w, user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erreur lors de la génération du token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CreerUtilisateur enregistre un nouveau compte.
func (h *Handler) CreerUtilisateur(w http.ResponseWriter, r *http.Request) {
	var req createUtilisateurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}

	hash, err := utils.HasherMotDePasse(req.MotDePasse)
	if err != nil {
		http.Error(w, "erreur lors du traitement du mot de passe", http.StatusInternalServerError)
		return
	}

	u := Utilisateur{
		Nom:        req.Nom,
		Email:      req.Email,
		MotDePasse: hash,
		IsAdmin:    req.IsAdmin,
	}

	if err := h.Repository.Creer(&u); err != nil {
		http.Error(w, "erreur lors de la création de l'utilisateur", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// Me retourne l'utilisateur connecté.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUtilisateurID).(uint)

	u, err := h.Repository.TrouverParID(userID)
	if err != nil {
		http.Error(w, "utilisateur introuvable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}
