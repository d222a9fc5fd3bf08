package utilisateur

import "gorm.io/gorm"

// Repository encapsule l'accès aux comptes utilisateurs.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Creer(u *Utilisateur) error {
	return r.DB.Create(u).Error
}

func (r *Repository) TrouverParEmail(email string) (*Utilisateur, error) {
	var u Utilisateur
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) TrouverParID(id uint) (*Utilisateur, error) {
	var u Utilisateur
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
