package pengguna

import (
	"time"

	"gorm.io/gorm"

	"github.com/kontrakanku/api-sewa/internal/auth"
	"github.com/kontrakanku/api-sewa/internal/utils"
)

// Pengguna adalah akun yang bisa masuk ke dashboard.
type Pengguna struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:100;uniqueIndex;not null" json:"nama"`
	Email     string    `gorm:"size:100" json:"email"`
	Sandi     string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'admin'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate membuat tabel dan menanam akun bawaan bila belum ada.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Pengguna{}); err != nil {
		return err
	}
	return seed(db)
}

// Akun awal: satu admin dan satu akun demo baca-saja.
func seed(db *gorm.DB) error {
	benih := []struct {
		nama, sandi, role string
	}{
		{"admin", "321", auth.RoleAdmin},
		{"demo", "demo123", auth.RoleDemo},
	}
	for _, b := range benih {
		var count int64
		if err := db.Model(&Pengguna{}).Where("nama = ?", b.nama).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := utils.HashSandi(b.sandi)
		if err != nil {
			return err
		}
		if err := db.Create(&Pengguna{Nama: b.nama, Sandi: hash, Role: b.role}).Error; err != nil {
			return err
		}
	}
	return nil
}
