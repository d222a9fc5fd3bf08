package partenaire

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// PartenaireDTO est le payload de création/mise à jour d'un partenaire.
type PartenaireDTO struct {
	NomSociete             string  `json:"nomSociete" validate:"required"`
	TauxCommissionStandard float64 `json:"tauxCommissionStandard" validate:"gte=0,lte=1"`
}

// Valider applique les règles de validation du DTO.
func (d PartenaireDTO) Valider() error {
	return validate.Struct(d)
}
