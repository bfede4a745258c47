// internal/properti/model.go
package properti

import (
	"time"

	"gorm.io/gorm"
)

// Status unit yang dikenali.
const (
	StatusKosong    = "kosong"
	StatusTerisi    = "terisi"
	StatusPerbaikan = "perbaikan"
)

// Properti adalah satu unit kontrakan yang disewakan.
type Properti struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NamaUnit  string    `gorm:"size:100;not null" json:"nama_unit"`
	Tipe      string    `gorm:"size:50" json:"tipe"`
	HargaSewa int64     `gorm:"not null;default:0" json:"harga_sewa"`
	FotoPath  string    `gorm:"size:255" json:"foto_path"`
	Status    string    `gorm:"size:20;not null;default:'kosong';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate membuat tabel di database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Properti{})
}

// StatusValid memastikan status unit termasuk salah satu nilai yang dikenal.
func StatusValid(s string) bool {
	switch s {
	case StatusKosong, StatusTerisi, StatusPerbaikan:
		return true
	}
	return false
}
