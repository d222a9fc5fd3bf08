package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUtilisateurID ctxKey = "utilisateurID"
	CtxIsAdmin       ctxKey = "isAdmin"
)

// MiddlewareAuthentification exige un Bearer token valide et place les claims dans le contexte.
func MiddlewareAuthentification(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "token absent", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValiderToken(raw)
		if err != nil {
			http.Error(w, "token invalide", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUtilisateurID, claims.UtilisateurID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin bloque les utilisateurs non administrateurs.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "accès réservé aux administrateurs", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
