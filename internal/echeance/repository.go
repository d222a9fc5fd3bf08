package echeance

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsule l'accès aux échéances personnalisées.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retourne une copie du repo sur un *gorm.DB donné (ex. : tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CreerEnLot insère plusieurs échéances d'un coup (ignore si vide).
func (r *Repository) CreerEnLot(echeances []*EcheancePersonnalisee) error {
	if len(echeances) == 0 {
		return nil
	}
	return r.DB.Create(echeances).Error
}

// ListerParVente retourne les échéances d'une vente, par date croissante.
func (r *Repository) ListerParVente(venteID uint) ([]EcheancePersonnalisee, error) {
	var echeances []EcheancePersonnalisee
	err := r.DB.
		Where("vente_id = ?", venteID).
		Order("date_echeance ASC").
		Find(&echeances).Error
	return echeances, err
}

// MarquerPayee passe l'échéance au statut « payee » avec sa date de paiement.
func (r *Repository) MarquerPayee(id uint, datePaiement time.Time) error {
	return r.DB.Model(&EcheancePersonnalisee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"statut":        StatutPayee,
			"date_paiement": &datePaiement,
		}).Error
}

// SupprimerParVentes efface les échéances des ventes données.
func (r *Repository) SupprimerParVentes(venteIDs []uint) error {
	if len(venteIDs) == 0 {
		return nil
	}
	return r.DB.Where("vente_id IN ?", venteIDs).Delete(&EcheancePersonnalisee{}).Error
}
