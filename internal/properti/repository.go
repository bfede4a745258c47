package properti

import "gorm.io/gorm"

// Repository membungkus akses data unit kontrakan.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Simpan(p *Properti) error {
	return r.DB.Create(p).Error
}

func (r *Repository) CariPerID(id uint) (*Properti, error) {
	var p Properti
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DaftarDenganPenyewa mengembalikan semua unit berikut nama penyewa
// yang sedang menempatinya (left join, unit kosong tetap muncul).
func (r *Repository) DaftarDenganPenyewa() ([]ItemDaftar, error) {
	var daftar []ItemDaftar
	err := r.DB.
		Table("propertis").
		Select(`propertis.*,
			COALESCE(penyewas.nama, '') AS nama_penyewa,
			penyewas.jatuh_tempo AS jatuh_tempo`).
		Joins("LEFT JOIN penyewas ON penyewas.properti_id = propertis.id").
		Order("propertis.id DESC").
		Find(&daftar).Error
	return daftar, err
}

func (r *Repository) Perbarui(p *Properti) error {
	return r.DB.Save(p).Error
}

// Hapus menghapus unit; gorm.ErrRecordNotFound bila tidak ada yang terhapus.
func (r *Repository) Hapus(id uint) error {
	res := r.DB.Delete(&Properti{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HitungPerStatus menghitung unit terisi dan total unit untuk dashboard.
func (r *Repository) HitungPerStatus() (terisi int64, total int64, err error) {
	if err = r.DB.Model(&Properti{}).Where("status = ?", StatusTerisi).Count(&terisi).Error; err != nil {
		return
	}
	err = r.DB.Model(&Properti{}).Count(&total).Error
	return
}
