package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"gorm.io/gorm"
)

const (
	RefreshTTL    = 30 * 24 * time.Hour
	RefreshCookie = "rt"
)

/* ============================== Helpers ============================== */

func genererBrut() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hacherBrut(brut string) string {
	h := sha256.Sum256([]byte(brut))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// En localhost (http) le cookie doit rester Secure=false.
// En production (HTTPS), définir COOKIE_SECURE=true.
func cookieSecure() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

func poserCookieRT(w http.ResponseWriter, brut string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    brut,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   cookieSecure(),
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func effacerCookieRT(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Secure:   cookieSecure(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

/* ============================== Flux ============================== */

// EmettreJetonsConnexion est appelé au login après validation du mot de passe :
// génère le jeton d'accès, pose le cookie de rafraîchissement et retourne l'access token.
func EmettreJetonsConnexion(db *gorm.DB, w http.ResponseWriter, utilisateurID uint, isAdmin bool) (string, error) {
	access, err := GenererToken(utilisateurID, isAdmin)
	if err != nil {
		return "", err
	}

	brut, err := genererBrut()
	if err != nil {
		return "", err
	}

	rt := RefreshToken{
		UtilisateurID: utilisateurID,
		Hash:          hacherBrut(brut),
		IsAdmin:       isAdmin,
		ExpiresAt:     time.Now().Add(RefreshTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}

	poserCookieRT(w, brut, rt.ExpiresAt)
	return access, nil
}

// HTTPHandler expose /auth/refresh et /auth/logout.
type HTTPHandler struct {
	DB *gorm.DB
}

func NewHTTPHandler(db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{DB: db}
}

// Refresh fait tourner le jeton : révoque l'ancien, émet un nouveau couple access/refresh.
func (h *HTTPHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(RefreshCookie)
	if err != nil || c.Value == "" {
		http.Error(w, "cookie de rafraîchissement absent", http.StatusUnauthorized)
		return
	}

	var rt RefreshToken
	if err := h.DB.Where("hash = ?", hacherBrut(c.Value)).First(&rt).Error; err != nil {
		effacerCookieRT(w)
		http.Error(w, "jeton de rafraîchissement inconnu", http.StatusUnauthorized)
		return
	}
	if rt.RevokedAt != nil || time.Now().After(rt.ExpiresAt) {
		effacerCookieRT(w)
		http.Error(w, "jeton de rafraîchissement expiré", http.StatusUnauthorized)
		return
	}

	// Rotation : révoque l'ancien avant d'émettre le nouveau.
	now := time.Now()
	if err := h.DB.Model(&rt).Update("revoked_at", &now).Error; err != nil {
		http.Error(w, "erreur lors de la rotation du jeton", http.StatusInternalServerError)
		return
	}

	access, err := EmettreJetonsConnexion(h.DB, w, rt.UtilisateurID, rt.IsAdmin)
	if err != nil {
		http.Error(w, "erreur lors de l'émission du jeton", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": access})
}

// Logout révoque le jeton courant et efface le cookie.
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(RefreshCookie); err == nil && c.Value != "" {
		now := time.Now()
		h.DB.Model(&RefreshToken{}).
			Where("hash = ?", hacherBrut(c.Value)).
			Update("revoked_at", &now)
	}
	effacerCookieRT(w)
	w.WriteHeader(http.StatusNoContent)
}

// Migrate crée la table des jetons de rafraîchissement.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RefreshToken{})
}
