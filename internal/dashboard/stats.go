// internal/dashboard/stats.go
package dashboard

import (
	"math"
	"time"

	"github.com/kontrakanku/api-sewa/internal/pembayaran"
)

// Stats adalah ringkasan angka yang dibaca halaman dashboard.
// TingkatHunian nil berarti belum ada unit (tampilkan "tidak ada data").
type Stats struct {
	TotalPendapatan int64 `json:"totalPendapatan"`
	UnitTerisi      int   `json:"unitTerisi"`
	TotalUnit       int   `json:"totalUnit"`
	TingkatHunian   *int  `json:"tingkatHunian"`
	JatuhTempo      int   `json:"jatuhTempo"`
	KontrakAktif    int   `json:"kontrakAktif"`
	KontrakLunas    int   `json:"kontrakLunas"`
}

// KontrakRingkas adalah potongan kontrak yang dibutuhkan agregasi.
// UangDibayar nil menandakan catatan lama yang belum punya kolom itu.
type KontrakRingkas struct {
	Nominal      int64
	UangDibayar  *int64
	TanggalAkhir *time.Time
}

// pendapatan menghitung kontribusi kontrak ke total pendapatan: nilai
// kontrak dianggap pemasukan penuh selama belum ada setoran tercatat,
// baik karena kolomnya hilang maupun masih nol.
func (k KontrakRingkas) pendapatan() int64 {
	if k.UangDibayar == nil || *k.UangDibayar == 0 {
		return k.Nominal
	}
	return *k.UangDibayar
}

// terbayar mengembalikan setoran nyata untuk klasifikasi status;
// hanya kolom yang hilang yang jatuh ke Nominal, nol tetap nol.
func (k KontrakRingkas) terbayar() int64 {
	if k.UangDibayar == nil {
		return k.Nominal
	}
	return *k.UangDibayar
}

// Hitung mereduksi seluruh kontrak dan hitungan unit menjadi angka
// dashboard. Murni tanpa efek samping; dihitung ulang tiap pemuatan data.
func Hitung(kontrak []KontrakRingkas, unitTerisi, totalUnit int, now time.Time) Stats {
	var s Stats

	hariIni := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	batasMinggu := hariIni.AddDate(0, 0, 7)

	for _, k := range kontrak {
		s.TotalPendapatan += k.pendapatan()

		if k.TanggalAkhir == nil || k.TanggalAkhir.After(now) {
			s.KontrakAktif++
		}
		if pembayaran.StatusDari(k.Nominal, k.terbayar()) == pembayaran.StatusLunas {
			s.KontrakLunas++
		}
		if k.TanggalAkhir != nil {
			akhir := time.Date(k.TanggalAkhir.Year(), k.TanggalAkhir.Month(), k.TanggalAkhir.Day(),
				0, 0, 0, 0, k.TanggalAkhir.Location())
			// batas bawah dan atas sama-sama inklusif
			if !akhir.Before(hariIni) && !akhir.After(batasMinggu) {
				s.JatuhTempo++
			}
		}
	}

	s.UnitTerisi = unitTerisi
	s.TotalUnit = totalUnit
	if totalUnit > 0 {
		persen := int(math.Round(float64(unitTerisi) / float64(totalUnit) * 100))
		s.TingkatHunian = &persen
	}

	return s
}
