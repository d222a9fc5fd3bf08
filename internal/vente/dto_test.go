package vente

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func dtoAutomatique() CreateVenteDTO {
	return CreateVenteDTO{
		PartenaireID:           1,
		ClientFinalNom:         "Client SA",
		MontantTotalVente:      10000,
		TauxCommissionApplique: 0.10,
		DateVente:              "2024-01-15",
		PlanType:               PlanAutomatique,
		NombreEcheances:        4,
		PasEcheance:            PasMensuel,
	}
}

func TestValiderPlanAutomatique(t *testing.T) {
	require.NoError(t, dtoAutomatique().Valider())
}

func TestValiderRejetteDateInvalide(t *testing.T) {
	dto := dtoAutomatique()
	dto.DateVente = "15/01/2024"
	require.Error(t, dto.Valider())
}

func TestValiderRejettePlanInconnu(t *testing.T) {
	dto := dtoAutomatique()
	dto.PlanType = "Forfait"
	require.Error(t, dto.Valider())
}

func TestValiderPlanPersonnaliseSommeExacte(t *testing.T) {
	dto := dtoAutomatique()
	dto.PlanType = PlanPersonnalise
	dto.NombreEcheances = 0
	dto.PasEcheance = ""
	// Commission totale : 10 000 × 0,10 = 1 000.
	dto.Echeances = []EcheanceDTO{
		{Date: "2024-02-01", Commission: 400},
		{Date: "2024-03-01", Commission: 600},
	}
	require.NoError(t, dto.Valider())
}

func TestValiderPlanPersonnaliseToleranceSomme(t *testing.T) {
	// Écart de 0,02 sur la somme : accepté.
	require.NoError(t, ValiderEcheancesPersonnalisees(1000, []EcheanceDTO{
		{Date: "2024-02-01", Commission: 499.99},
		{Date: "2024-03-01", Commission: 499.99},
	}))

	// Écart de 1 : rejeté.
	require.Error(t, ValiderEcheancesPersonnalisees(1000, []EcheanceDTO{
		{Date: "2024-02-01", Commission: 499},
		{Date: "2024-03-01", Commission: 500},
	}))
}

func TestValiderEcheanceDateInvalide(t *testing.T) {
	require.Error(t, ValiderEcheancesPersonnalisees(100, []EcheanceDTO{
		{Date: "bientôt", Commission: 100},
	}))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	require.Equal(t, "2024-01-31", d.Format("2006-01-02"))

	d, err = ParseDate("2024-01-31T10:30:00Z")
	require.NoError(t, err)
	require.Equal(t, "2024-01-31", d.Format("2006-01-02"))

	_, err = ParseDate("31/01/2024")
	require.Error(t, err)
}
