// internal/pembayaran/model.go
package pembayaran

import (
	"time"

	"gorm.io/gorm"
)

// Metode pembayaran yang diterima formulir.
const (
	MetodeTransfer = "Transfer"
	MetodeTunai    = "Tunai"
	MetodeEWallet  = "E-Wallet"
)

// Pembayaran adalah kontrak sewa satu penyewa atas satu unit beserta
// keadaan tagihannya. Nominal adalah total biaya kontrak dan menjadi
// acuan; DurasiBulan hanyalah hasil hitung saat kontrak dibuat.
type Pembayaran struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PenyewaID    uint       `gorm:"not null;index" json:"penyewa_id"`
	PropertiID   uint       `gorm:"index" json:"properti_id"`
	HargaSewa    int64      `gorm:"not null;default:0" json:"harga_sewa"`
	DurasiBulan  int        `gorm:"not null;default:0" json:"durasi_bulan"`
	Nominal      int64      `gorm:"not null;default:0" json:"nominal"`
	UangDibayar  int64      `gorm:"not null;default:0" json:"uang_dibayar"`
	TanggalBayar time.Time  `json:"tanggal_bayar"`
	TanggalMulai time.Time  `json:"tanggal_mulai"`
	TanggalAkhir *time.Time `json:"tanggal_akhir"` // nil berarti kontrak tanpa tanggal berakhir
	MetodeBayar  string     `gorm:"size:50;default:'Transfer'" json:"metode_bayar"`
	KwitansiPath string     `gorm:"size:255" json:"kwitansi_path"`
	Keterangan   string     `json:"keterangan"`

	Riwayat []RiwayatPembayaran `gorm:"foreignKey:PembayaranID;constraint:OnDelete:CASCADE" json:"riwayat,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RiwayatPembayaran adalah satu kejadian setor untuk sebuah kontrak.
// Barisnya hanya ditambah, tidak pernah diubah atau diurutkan ulang.
type RiwayatPembayaran struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PembayaranID  uint      `gorm:"not null;index" json:"pembayaran_id"`
	JumlahDibayar int64     `gorm:"not null" json:"jumlah_dibayar"`
	TanggalBayar  time.Time `gorm:"index" json:"tanggal_bayar"`
	MetodeBayar   string    `gorm:"size:50;default:'Transfer'" json:"metode_bayar"`
	KwitansiPath  string    `gorm:"size:255" json:"kwitansi_path"`
	Keterangan    string    `json:"keterangan"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Migrate membuat kedua tabel di database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pembayaran{}, &RiwayatPembayaran{})
}

// MetodeValid memastikan metode bayar termasuk pilihan yang dikenal.
func MetodeValid(m string) bool {
	switch m {
	case MetodeTransfer, MetodeTunai, MetodeEWallet:
		return true
	}
	return false
}
