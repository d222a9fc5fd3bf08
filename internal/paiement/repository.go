package paiement

import "gorm.io/gorm"

// Repository encapsule l'accès à l'historique des commissions payées.
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

func (r *Repository) Creer(c *CommissionPayee) error {
	return r.DB.Create(c).Error
}

// ListerToutes retourne l'historique complet, paiements les plus récents d'abord.
func (r *Repository) ListerToutes() ([]CommissionPayee, error) {
	var paiements []CommissionPayee
	err := r.DB.Order("date_paiement DESC").Find(&paiements).Error
	return paiements, err
}

// ListerParPartenaire retourne l'historique d'un partenaire.
func (r *Repository) ListerParPartenaire(partenaireID uint) ([]CommissionPayee, error) {
	var paiements []CommissionPayee
	err := r.DB.
		Where("partenaire_id = ?", partenaireID).
		Order("date_paiement DESC").
		Find(&paiements).Error
	return paiements, err
}

// SupprimerParClient purge l'historique d'un couple (partenaire, client final).
// Utilisé uniquement par l'annulation d'un client.
func (r *Repository) SupprimerParClient(partenaireID uint, clientFinalNom string) error {
	return r.DB.
		Where("partenaire_id = ? AND client_final_nom = ?", partenaireID, clientFinalNom).
		Delete(&CommissionPayee{}).Error
}
