package pengguna

import "gorm.io/gorm"

type Repository interface {
	CariPerNama(db *gorm.DB, nama string) (*Pengguna, error)
	Simpan(db *gorm.DB, p *Pengguna) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) CariPerNama(db *gorm.DB, nama string) (*Pengguna, error) {
	var p Pengguna
	err := db.Where("nama = ?", nama).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) Simpan(db *gorm.DB, p *Pengguna) error {
	return db.Save(p).Error
}
