package commission

import (
	"testing"
	"time"

	"github.com/appli-facturation/api-commissions/internal/echeance"
	"github.com/appli-facturation/api-commissions/internal/vente"
	"github.com/stretchr/testify/require"
)

func jour(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func venteAutomatique(id uint, total float64, n int, pas, dateVente string, t *testing.T) vente.Vente {
	return vente.Vente{
		ID:                     id,
		PartenaireID:           1,
		ClientFinalNom:         "Client SA",
		MontantCommissionTotal: total,
		PlanType:               vente.PlanAutomatique,
		NombreEcheances:        n,
		PasEcheance:            pas,
		DateVente:              jour(t, dateVente),
	}
}

func TestEcheancierAutomatiqueMensuel(t *testing.T) {
	v := venteAutomatique(7, 1000, 4, vente.PasMensuel, "2024-01-15", t)

	echeances := GenererEcheancier(v)
	require.Len(t, echeances, 4)

	attendues := []string{"2024-02-15", "2024-03-15", "2024-04-15", "2024-05-15"}
	for i, e := range echeances {
		require.Equal(t, attendues[i], e.DateEcheance.Format("2006-01-02"))
		require.InDelta(t, 250.0, e.Montant, 1e-9)
		require.Equal(t, vente.PlanAutomatique, e.PlanType)
		require.Equal(t, uint(7), e.VenteID)
	}
}

func TestEcheancierIdentifiantsDeterministes(t *testing.T) {
	v := venteAutomatique(42, 300, 3, vente.PasMensuel, "2024-06-01", t)

	premiere := GenererEcheancier(v)
	seconde := GenererEcheancier(v)

	require.Equal(t, []string{"42_auto_1", "42_auto_2", "42_auto_3"},
		[]string{premiere[0].ID, premiere[1].ID, premiere[2].ID})
	require.Equal(t, premiere, seconde)
}

func TestEcheancierClampeFinDeMois(t *testing.T) {
	// Vente du 31 janvier : février n'a pas de 31, la première échéance est
	// ramenée au dernier jour du mois (29 février 2024, année bissextile).
	v := venteAutomatique(1, 500, 2, vente.PasMensuel, "2024-01-31", t)

	echeances := GenererEcheancier(v)
	require.Len(t, echeances, 2)
	require.Equal(t, "2024-02-29", echeances[0].DateEcheance.Format("2006-01-02"))
	require.Equal(t, "2024-03-31", echeances[1].DateEcheance.Format("2006-01-02"))
}

func TestAjouterMois(t *testing.T) {
	require.Equal(t, "2023-02-28", AjouterMois(jour(t, "2023-01-31"), 1).Format("2006-01-02"))
	require.Equal(t, "2024-02-29", AjouterMois(jour(t, "2024-01-31"), 1).Format("2006-01-02"))
	require.Equal(t, "2024-04-30", AjouterMois(jour(t, "2024-01-31"), 3).Format("2006-01-02"))
	require.Equal(t, "2025-01-15", AjouterMois(jour(t, "2024-12-15"), 1).Format("2006-01-02"))
}

func TestEcheancierTrimestriel(t *testing.T) {
	v := venteAutomatique(2, 900, 3, vente.PasTrimestriel, "2024-01-15", t)

	echeances := GenererEcheancier(v)
	require.Len(t, echeances, 3)
	require.Equal(t, "2024-04-15", echeances[0].DateEcheance.Format("2006-01-02"))
	require.Equal(t, "2024-07-15", echeances[1].DateEcheance.Format("2006-01-02"))
	require.Equal(t, "2024-10-15", echeances[2].DateEcheance.Format("2006-01-02"))
}

func TestSommeEgaleCommissionTotale(t *testing.T) {
	v := venteAutomatique(3, 100, 3, vente.PasMensuel, "2024-03-10", t)

	var somme float64
	for _, e := range GenererEcheancier(v) {
		somme += e.Montant
	}
	require.InDelta(t, 100.0, somme, 1e-9)
}

func TestPlanIncompletEcheancierVide(t *testing.T) {
	sansNombre := venteAutomatique(4, 100, 0, vente.PasMensuel, "2024-01-01", t)
	require.Empty(t, GenererEcheancier(sansNombre))

	sansPas := venteAutomatique(5, 100, 3, "", "2024-01-01", t)
	require.Empty(t, GenererEcheancier(sansPas))

	personnaliseVide := vente.Vente{ID: 6, PlanType: vente.PlanPersonnalise}
	require.Empty(t, GenererEcheancier(personnaliseVide))
}

func TestEcheancierPersonnaliseRestitution(t *testing.T) {
	v := vente.Vente{
		ID:             8,
		PartenaireID:   2,
		ClientFinalNom: "Client SARL",
		PlanType:       vente.PlanPersonnalise,
		Echeances: []echeance.EcheancePersonnalisee{
			{ID: 31, DateEcheance: jour(t, "2024-05-01"), Commission: 300, Statut: echeance.StatutPayee},
			{ID: 30, DateEcheance: jour(t, "2024-02-01"), Commission: 700, Statut: echeance.StatutEnAttente},
		},
	}

	echeances := GenererEcheancier(v)
	require.Len(t, echeances, 2)

	// Restitution à l'identique mais triée par date.
	require.Equal(t, "30", echeances[0].ID)
	require.InDelta(t, 700.0, echeances[0].Montant, 1e-9)
	require.False(t, echeances[0].MarqueePayee)

	require.Equal(t, "31", echeances[1].ID)
	require.InDelta(t, 300.0, echeances[1].Montant, 1e-9)
	require.True(t, echeances[1].MarqueePayee)
}
