package vente

import "gorm.io/gorm"

// Repository encapsule l'accès aux ventes.
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

func (r *Repository) Creer(v *Vente) error {
	return r.DB.Create(v).Error
}

// TrouverParID charge une vente avec ses échéances personnalisées.
func (r *Repository) TrouverParID(id uint) (*Vente, error) {
	var v Vente
	if err := r.DB.Preload("Echeances").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListerToutes charge toutes les ventes avec leurs échéances personnalisées.
func (r *Repository) ListerToutes() ([]Vente, error) {
	var ventes []Vente
	err := r.DB.Preload("Echeances").Order("date_vente ASC").Find(&ventes).Error
	return ventes, err
}

// ListerParPartenaire charge les ventes d'un partenaire.
func (r *Repository) ListerParPartenaire(partenaireID uint) ([]Vente, error) {
	var ventes []Vente
	err := r.DB.Preload("Echeances").
		Where("partenaire_id = ?", partenaireID).
		Order("date_vente ASC").
		Find(&ventes).Error
	return ventes, err
}

// ListerParClient charge les ventes d'un couple (partenaire, client final).
func (r *Repository) ListerParClient(partenaireID uint, clientFinalNom string) ([]Vente, error) {
	var ventes []Vente
	err := r.DB.Preload("Echeances").
		Where("partenaire_id = ? AND client_final_nom = ?", partenaireID, clientFinalNom).
		Find(&ventes).Error
	return ventes, err
}

func (r *Repository) Supprimer(id uint) error {
	return r.DB.Delete(&Vente{}, id).Error
}
