package penyewa

import "gorm.io/gorm"

// Repository membungkus akses data penyewa.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Simpan(p *Penyewa) error {
	return r.DB.Create(p).Error
}

func (r *Repository) CariPerID(id uint) (*Penyewa, error) {
	var p Penyewa
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DaftarDenganStatus mengembalikan semua penyewa berikut unit yang
// ditempati dan angka kontraknya.
func (r *Repository) DaftarDenganStatus() ([]ItemDaftar, error) {
	var daftar []ItemDaftar
	err := r.DB.
		Table("penyewas").
		Select(`penyewas.*,
			COALESCE(propertis.nama_unit, '') AS nama_properti,
			COALESCE(propertis.foto_path, '') AS foto_properti,
			COALESCE(pembayarans.nominal, 0) AS total_biaya,
			COALESCE(pembayarans.uang_dibayar, 0) AS uang_dibayar`).
		Joins("LEFT JOIN propertis ON propertis.id = penyewas.properti_id").
		Joins("LEFT JOIN pembayarans ON pembayarans.penyewa_id = penyewas.id").
		Order("penyewas.id DESC").
		Find(&daftar).Error
	if err != nil {
		return nil, err
	}
	for i := range daftar {
		daftar[i].TurunkanStatus()
	}
	return daftar, nil
}

func (r *Repository) Perbarui(p *Penyewa) error {
	return r.DB.Save(p).Error
}

// Hapus menghapus penyewa; gorm.ErrRecordNotFound bila tidak ada.
func (r *Repository) Hapus(id uint) error {
	res := r.DB.Delete(&Penyewa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
