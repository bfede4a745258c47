// internal/penyewa/model.go
package penyewa

import (
	"time"

	"gorm.io/gorm"
)

// Penyewa adalah orang yang menyewa unit. Relasi ke unit hanya berupa
// referensi; penyewa tidak memiliki unitnya.
type Penyewa struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Nama         string     `gorm:"size:100;not null" json:"nama"`
	NIK          string     `gorm:"size:20" json:"nik"`
	Email        string     `gorm:"size:100" json:"email"`
	Telepon      string     `gorm:"size:20;not null" json:"telepon"`
	Alamat       string     `json:"alamat"`
	PropertiID   *uint      `gorm:"index" json:"properti_id"`
	KtpPath      string     `gorm:"size:255" json:"ktp_path"`
	MulaiKontrak *time.Time `json:"mulai_kontrak"`
	JatuhTempo   *time.Time `json:"jatuh_tempo"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Migrate membuat tabel di database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Penyewa{})
}
