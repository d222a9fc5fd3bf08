package commission

import (
	"testing"

	"github.com/appli-facturation/api-commissions/internal/paiement"
	"github.com/appli-facturation/api-commissions/internal/vente"
	"github.com/stretchr/testify/require"
)

func TestEtatDesCommissionsRetard(t *testing.T) {
	v := venteAutomatique(20, 300, 3, vente.PasMensuel, "2024-01-10", t)
	// Échéances : 2024-02-10, 2024-03-10, 2024-04-10.
	maintenant := jour(t, "2024-03-10")

	etats := EtatDesCommissions([]vente.Vente{v}, nil, maintenant)
	require.Len(t, etats, 3)

	// Passée et non réglée : en retard.
	require.True(t, etats[0].EnRetard)
	// Le jour même n'est pas un retard.
	require.False(t, etats[1].EnRetard)
	// À venir.
	require.False(t, etats[2].EnRetard)
}

func TestEtatDesCommissionsRegleeJamaisEnRetard(t *testing.T) {
	v := venteAutomatique(21, 100, 1, vente.PasMensuel, "2024-01-10", t)
	historique := []paiement.CommissionPayee{
		{VenteID: 21, Montant: 100, DateEcheance: jour(t, "2024-02-10")},
	}

	etats := EtatDesCommissions([]vente.Vente{v}, historique, jour(t, "2024-06-01"))
	require.Len(t, etats, 1)
	require.True(t, etats[0].Payee)
	require.False(t, etats[0].EnRetard)
}

func TestEtatDesCommissionsInclutLesReglees(t *testing.T) {
	// La vue d'état liste toutes les échéances, réglées comprises.
	v := venteAutomatique(22, 200, 2, vente.PasMensuel, "2024-01-10", t)
	historique := []paiement.CommissionPayee{
		{VenteID: 22, Montant: 100, DateEcheance: jour(t, "2024-02-10")},
	}

	etats := EtatDesCommissions([]vente.Vente{v}, historique, jour(t, "2024-01-15"))
	require.Len(t, etats, 2)
	require.True(t, etats[0].Payee)
	require.False(t, etats[1].Payee)

	require.InDelta(t, 100.0, TotalEnAttente(etats), 1e-9)
}

func TestEtatDesCommissionsTriChronologique(t *testing.T) {
	v1 := venteAutomatique(23, 100, 1, vente.PasMensuel, "2024-05-01", t)
	v2 := venteAutomatique(24, 100, 1, vente.PasMensuel, "2024-01-01", t)

	etats := EtatDesCommissions([]vente.Vente{v1, v2}, nil, jour(t, "2024-01-01"))
	require.Len(t, etats, 2)
	require.Equal(t, uint(24), etats[0].VenteID)
	require.Equal(t, uint(23), etats[1].VenteID)
}
