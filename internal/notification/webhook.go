package notification

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnvoyerAlertePaiement pousse une alerte webhook après l'enregistrement d'un
// règlement. Meilleur effort : un échec est journalisé, jamais remonté.
func EnvoyerAlertePaiement(clientFinalNom string, montant float64) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"message":        "Commission marquée payée",
		"clientFinalNom": clientFinalNom,
		"montant":        montant,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("erreur lors de l'envoi du webhook : %v", err)
		return
	}
	defer resp.Body.Close()
}
