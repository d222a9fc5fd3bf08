package partenaire

import "gorm.io/gorm"

// Repository encapsule l'accès aux partenaires.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Creer(p *Partenaire) error {
	return r.DB.Create(p).Error
}

func (r *Repository) TrouverParID(id uint) (*Partenaire, error) {
	var p Partenaire
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListerTous() ([]Partenaire, error) {
	var partenaires []Partenaire
	err := r.DB.Order("nom_societe ASC").Find(&partenaires).Error
	return partenaires, err
}

func (r *Repository) MettreAJour(p *Partenaire) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Supprimer(id uint) error {
	return r.DB.Delete(&Partenaire{}, id).Error
}

// CompterVentes retourne le nombre de ventes encore rattachées au partenaire.
// La suppression d'un partenaire est refusée tant que ce compte est non nul.
func (r *Repository) CompterVentes(id uint) (int64, error) {
	var n int64
	err := r.DB.Table("ventes").
		Where("partenaire_id = ? AND deleted_at IS NULL", id).
		Count(&n).Error
	return n, err
}
