package pembayaran

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHitungSisaWaktu(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	akhirPada := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	tests := []struct {
		name     string
		akhir    *time.Time
		kategori KategoriWaktu
		sisaHari int64
		terlewat int64
		persen   int
	}{
		{"tanpa tanggal akhir", nil, WaktuBelumDitentukan, 0, 0, 0},
		{"berakhir kemarin", akhirPada(-24 * time.Hour), WaktuBerakhir, -1, 1, 100},
		{"berakhir tiga hari lalu", akhirPada(-72 * time.Hour), WaktuBerakhir, -3, 3, 100},
		{"berakhir hari ini", akhirPada(0), WaktuBerakhirHariIni, 0, 0, 100},
		{"sisa satu setengah hari dibulatkan ke atas", akhirPada(36 * time.Hour), WaktuSegeraBerakhir, 2, 0, 90},
		{"tepat tujuh hari masih segera berakhir", akhirPada(7 * 24 * time.Hour), WaktuSegeraBerakhir, 7, 0, 90},
		{"delapan hari akan berakhir", akhirPada(8 * 24 * time.Hour), WaktuAkanBerakhir, 8, 0, 80},
		{"tepat tiga puluh hari akan berakhir", akhirPada(30 * 24 * time.Hour), WaktuAkanBerakhir, 30, 0, 80},
		{"lebih dari tiga puluh hari berjalan", akhirPada(31 * 24 * time.Hour), WaktuBerjalan, 31, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitungSisaWaktu(tt.akhir, now)
			assert.Equal(t, tt.kategori, got.Kategori)
			assert.Equal(t, tt.sisaHari, got.SisaHari)
			assert.Equal(t, tt.terlewat, got.HariTerlewat)
			assert.Equal(t, tt.persen, got.Persentase)
		})
	}
}

func TestHitungSisaWaktu_PecahanHariKeKemarin(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	akhir := now.Add(-12 * time.Hour)
	got := HitungSisaWaktu(&akhir, now)
	// -0,5 hari dibulatkan ke nol: dianggap berakhir hari ini
	assert.Equal(t, WaktuBerakhirHariIni, got.Kategori)
	assert.Equal(t, int64(0), got.HariTerlewat)
}
