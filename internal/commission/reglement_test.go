package commission

import (
	"testing"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
	"github.com/stretchr/testify/require"
)

func TestEstRegleeToleranceMontant(t *testing.T) {
	e := Echeance{
		VenteID:      10,
		Montant:      100.00,
		DateEcheance: jour(t, "2024-02-15"),
		PlanType:     vente.PlanAutomatique,
	}

	// Écart de 0,01 : même commission.
	historique := []paiement.CommissionPayee{
		{VenteID: 10, Montant: 100.01, DateEcheance: jour(t, "2024-02-15")},
	}
	require.True(t, EstReglee(e, historique))

	// Écart de 0,03 : commission distincte.
	historique = []paiement.CommissionPayee{
		{VenteID: 10, Montant: 100.03, DateEcheance: jour(t, "2024-02-15")},
	}
	require.False(t, EstReglee(e, historique))
}

func TestEstRegleeExigeMemeVenteEtMemeJour(t *testing.T) {
	e := Echeance{
		VenteID:      10,
		Montant:      100,
		DateEcheance: jour(t, "2024-02-15"),
	}

	autreVente := []paiement.CommissionPayee{
		{VenteID: 11, Montant: 100, DateEcheance: jour(t, "2024-02-15")},
	}
	require.False(t, EstReglee(e, autreVente))

	autreJour := []paiement.CommissionPayee{
		{VenteID: 10, Montant: 100, DateEcheance: jour(t, "2024-02-16")},
	}
	require.False(t, EstReglee(e, autreJour))
}

func TestEstRegleeStatutPersonnalise(t *testing.T) {
	// Une échéance personnalisée déjà marquée payée est réglée même sans
	// paiement correspondant dans l'historique (données migrées à la main).
	e := Echeance{
		VenteID:      12,
		Montant:      50,
		DateEcheance: jour(t, "2024-03-01"),
		PlanType:     vente.PlanPersonnalise,
		MarqueePayee: true,
	}
	require.True(t, EstReglee(e, nil))
}

func TestEstRegleeHistoriqueVide(t *testing.T) {
	e := Echeance{VenteID: 1, Montant: 10, DateEcheance: jour(t, "2024-01-01")}
	require.False(t, EstReglee(e, nil))
	require.False(t, EstReglee(e, []paiement.CommissionPayee{}))
}

func TestTrouverEcheanceAPayer(t *testing.T) {
	echeances := []echeance.EcheancePersonnalisee{
		{ID: 1, DateEcheance: jour(t, "2024-02-01"), Commission: 100, Statut: echeance.StatutPayee},
		{ID: 2, DateEcheance: jour(t, "2024-02-01"), Commission: 100, Statut: echeance.StatutEnAttente},
		{ID: 3, DateEcheance: jour(t, "2024-03-01"), Commission: 200, Statut: echeance.StatutEnAttente},
	}

	// Les lignes déjà payées sont ignorées.
	id, ok := TrouverEcheanceAPayer(echeances, jour(t, "2024-02-01"), 100)
	require.True(t, ok)
	require.Equal(t, uint(2), id)

	// Montant à la tolérance près.
	id, ok = TrouverEcheanceAPayer(echeances, jour(t, "2024-03-01"), 200.01)
	require.True(t, ok)
	require.Equal(t, uint(3), id)

	// Aucune correspondance.
	_, ok = TrouverEcheanceAPayer(echeances, jour(t, "2024-04-01"), 100)
	require.False(t, ok)
	_, ok = TrouverEcheanceAPayer(echeances, jour(t, "2024-03-01"), 200.05)
	require.False(t, ok)
}
