package paiement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func paye(t *testing.T, s string, montant float64) CommissionPayee {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return CommissionPayee{Montant: montant, DatePaiement: d}
}

func TestCalculerResume(t *testing.T) {
	paiements := []CommissionPayee{
		paye(t, "2024-02-10", 250),
		paye(t, "2024-02-20", 100),
		paye(t, "2024-03-05", 300),
	}

	resume := CalculerResume(paiements)
	require.Equal(t, 3, resume.NombrePaiements)
	require.InDelta(t, 650.0, resume.TotalPaye, 1e-9)
	require.InDelta(t, 350.0, resume.ParMois["2024-02"], 1e-9)
	require.InDelta(t, 300.0, resume.ParMois["2024-03"], 1e-9)
}

func TestCalculerResumeVide(t *testing.T) {
	resume := CalculerResume(nil)
	require.Zero(t, resume.TotalPaye)
	require.Zero(t, resume.NombrePaiements)
	require.Empty(t, resume.ParMois)
}
