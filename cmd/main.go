package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/appli-facturation/api-commissions/internal/auth"
	"github.com/appli-facturation/api-commissions/internal/commission"
	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/partenaire"
	"github.com/appli-facturation/api-commissions/internal/projection"
	"github.com/appli-facturation/api-commissions/internal/utilisateur"
	"github.com/appli-facturation/api-commissions/internal/utils/db"
	"github.com/appli-facturation/api-commissions/internal/vente"

	"github.com/gorilla/mux"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("pas de fichier .env, configuration lue dans l'environnement")
	}

	base, err := db.GetDB()
	if err != nil {
		log.Fatal("erreur de connexion à la base :", err)
	}

	// AutoMigrate pour tous les modèles
	if err := base.AutoMigrate(
		&utilisateur.Utilisateur{},
		&auth.RefreshToken{},
		&partenaire.Partenaire{},
		&vente.Vente{},
		&echeance.EcheancePersonnalisee{},
		&paiement.CommissionPayee{},
	); err != nil {
		log.Fatal("erreur lors de l'AutoMigrate :", err)
	}

	// Handlers
	utilisateurHandler := utilisateur.NewHandler(base)
	authHandler := auth.NewHTTPHandler(base)
	partenaireHandler := partenaire.NewHandler(base)
	venteHandler := vente.NewHandler(base)
	commissionHandler := commission.NewHandler(base)
	paiementHandler := paiement.NewHandler(base)
	projectionHandler := projection.NewHandler(base)

	// Router
	r := mux.NewRouter()

	// Routes publiques
	r.HandleFunc("/utilisateurs", utilisateurHandler.CreerUtilisateur).Methods("POST")
	r.HandleFunc("/login", utilisateurHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Routes protégées
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAuthentification)

	api.HandleFunc("/utilisateurs/me", utilisateurHandler.Me).Methods("GET")

	// Partenaires
	api.HandleFunc("/partenaires", partenaireHandler.CreerPartenaire).Methods("POST")
	api.HandleFunc("/partenaires", partenaireHandler.ListerPartenaires).Methods("GET")
	api.HandleFunc("/partenaires/{id}", partenaireHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/partenaires/{id}", partenaireHandler.MettreAJourPartenaire).Methods("PUT")
	api.HandleFunc("/partenaires/{id}", partenaireHandler.SupprimerPartenaire).Methods("DELETE")
	api.HandleFunc("/partenaires/{id}/ventes", venteHandler.ListerParPartenaire).Methods("GET")

	// Ventes
	api.HandleFunc("/ventes", venteHandler.CreerVente).Methods("POST")
	api.HandleFunc("/ventes", venteHandler.ListerVentes).Methods("GET")
	api.HandleFunc("/ventes/{id}", venteHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/ventes/{id}", venteHandler.SupprimerVente).Methods("DELETE")

	// Commissions
	api.HandleFunc("/commissions", commissionHandler.Lister).Methods("GET")
	api.HandleFunc("/commissions/reglement", commissionHandler.Regler).Methods("POST")
	api.HandleFunc("/commissions/annulation-client", commissionHandler.AnnulerClient).Methods("POST")

	// Historique des paiements
	api.HandleFunc("/paiements", paiementHandler.ListerPaiements).Methods("GET")
	api.HandleFunc("/paiements/resume", paiementHandler.Resume).Methods("GET")

	// Projections mensuelles
	api.HandleFunc("/projections", projectionHandler.Lister).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Serveur démarré sur http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
