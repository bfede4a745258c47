// internal/pembayaran/repository.go
package pembayaran

import (
	"time"

	"gorm.io/gorm"
)

// Repository membungkus akses data kontrak dan riwayat setorannya.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= CRUD kontrak ========================= */

func (r *Repository) Simpan(p *Pembayaran) error {
	return r.DB.Create(p).Error
}

func (r *Repository) CariPerID(id uint) (*Pembayaran, error) {
	var p Pembayaran
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DaftarLengkap mengembalikan semua kontrak berikut data penyewa dan
// nama unitnya, terbaru lebih dulu.
func (r *Repository) DaftarLengkap() ([]ItemDaftar, error) {
	var daftar []ItemDaftar
	err := r.DB.
		Table("pembayarans").
		Select(`pembayarans.*,
			COALESCE(penyewas.nama, 'Unknown') AS nama_penyewa,
			COALESCE(penyewas.nik, '') AS nik,
			COALESCE(penyewas.email, '') AS email,
			COALESCE(penyewas.telepon, '') AS telepon,
			COALESCE(penyewas.alamat, '') AS alamat,
			COALESCE(penyewas.ktp_path, '') AS ktp_path,
			COALESCE(propertis.nama_unit, '') AS nama_unit`).
		Joins("LEFT JOIN penyewas ON penyewas.id = pembayarans.penyewa_id").
		Joins("LEFT JOIN propertis ON propertis.id = pembayarans.properti_id").
		Order("pembayarans.created_at DESC").
		Find(&daftar).Error
	return daftar, err
}

func (r *Repository) Perbarui(p *Pembayaran) error {
	return r.DB.Save(p).Error
}

// Hapus menghapus kontrak beserta seluruh riwayat setorannya.
func (r *Repository) Hapus(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pembayaran_id = ?", id).Delete(&RiwayatPembayaran{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Pembayaran{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

/* ==================== Riwayat (append-only) ==================== */

// DaftarRiwayat memuat kejadian setor satu kontrak urut tanggal bayar.
func (r *Repository) DaftarRiwayat(pembayaranID uint) ([]RiwayatPembayaran, error) {
	var riwayat []RiwayatPembayaran
	err := r.DB.
		Where("pembayaran_id = ?", pembayaranID).
		Order("tanggal_bayar ASC, id ASC").
		Find(&riwayat).Error
	return riwayat, err
}

// SumJumlahByPembayaranID menjumlahkan seluruh setoran satu kontrak.
// Bila db == nil memakai r.DB; bisa dipakai di dalam transaksi.
func (r *Repository) SumJumlahByPembayaranID(db *gorm.DB, pembayaranID uint) (int64, error) {
	if db == nil {
		db = r.DB
	}
	var total int64
	err := db.Model(&RiwayatPembayaran{}).
		Where("pembayaran_id = ?", pembayaranID).
		Select("COALESCE(SUM(jumlah_dibayar), 0)").
		Scan(&total).Error
	return total, err
}

// TambahRiwayat menambahkan satu kejadian setor lalu menyegarkan
// uang_dibayar kontrak dari jumlah riwayat, dalam satu transaksi.
// Kegagalan di tengah tidak meninggalkan setengah tulisan.
func (r *Repository) TambahRiwayat(pembayaranID uint, rw *RiwayatPembayaran) (int64, error) {
	var totalBaru int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		rw.PembayaranID = pembayaranID
		if err := tx.Create(rw).Error; err != nil {
			return err
		}
		total, err := r.SumJumlahByPembayaranID(tx, pembayaranID)
		if err != nil {
			return err
		}
		if err := tx.Model(&Pembayaran{}).
			Where("id = ?", pembayaranID).
			Update("uang_dibayar", total).Error; err != nil {
			return err
		}
		totalBaru = total
		return nil
	})
	return totalBaru, err
}

/* ================= Efek samping pembuatan kontrak ================= */

// CariLengkapPerID memuat satu kontrak berikut data penyewa dan unitnya.
func (r *Repository) CariLengkapPerID(id uint) (*ItemDaftar, error) {
	var item ItemDaftar
	err := r.DB.
		Table("pembayarans").
		Select(`pembayarans.*,
			COALESCE(penyewas.nama, 'Unknown') AS nama_penyewa,
			COALESCE(penyewas.nik, '') AS nik,
			COALESCE(penyewas.email, '') AS email,
			COALESCE(penyewas.telepon, '') AS telepon,
			COALESCE(penyewas.alamat, '') AS alamat,
			COALESCE(penyewas.ktp_path, '') AS ktp_path,
			COALESCE(propertis.nama_unit, '') AS nama_unit`).
		Joins("LEFT JOIN penyewas ON penyewas.id = pembayarans.penyewa_id").
		Joins("LEFT JOIN propertis ON propertis.id = pembayarans.properti_id").
		Where("pembayarans.id = ?", id).
		Take(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// TandaiUnitTerisi menandai unit terisi dan mencap awal kontrak si
// penyewa. Nama tabel dipakai langsung agar tidak menarik impor silang
// antar paket domain.
func (r *Repository) TandaiUnitTerisi(propertiID, penyewaID uint, mulai time.Time) error {
	if err := r.DB.Table("propertis").
		Where("id = ?", propertiID).
		Update("status", "terisi").Error; err != nil {
		return err
	}
	jatuhTempo := mulai.AddDate(0, 1, 0)
	return r.DB.Table("penyewas").
		Where("id = ?", penyewaID).
		Updates(map[string]interface{}{
			"properti_id":   propertiID,
			"mulai_kontrak": mulai,
			"jatuh_tempo":   jatuhTempo,
		}).Error
}
