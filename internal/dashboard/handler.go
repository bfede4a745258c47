package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/kontrakanku/api-sewa/internal/pembayaran"
	"github.com/kontrakanku/api-sewa/internal/properti"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /dashboard/stats
// Memuat kontrak dan unit lalu mereduksinya; tidak ada state antar request.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	var baris []struct {
		Nominal      int64
		UangDibayar  *int64
		TanggalAkhir *time.Time
	}
	if err := h.DB.Model(&pembayaran.Pembayaran{}).
		Select("nominal", "uang_dibayar", "tanggal_akhir").
		Find(&baris).Error; err != nil {
		http.Error(w, "Gagal menghitung statistik", http.StatusInternalServerError)
		return
	}

	kontrak := make([]KontrakRingkas, 0, len(baris))
	for _, b := range baris {
		kontrak = append(kontrak, KontrakRingkas{
			Nominal:      b.Nominal,
			UangDibayar:  b.UangDibayar,
			TanggalAkhir: b.TanggalAkhir,
		})
	}

	terisi, total, err := properti.NewRepository(h.DB).HitungPerStatus()
	if err != nil {
		http.Error(w, "Gagal menghitung statistik", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Hitung(kontrak, int(terisi), int(total), time.Now()))
}
