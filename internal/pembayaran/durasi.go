package pembayaran

import (
	"errors"
	"time"
)

// ErrRentangTanggal dikembalikan bila tanggal akhir mendahului tanggal mulai.
var ErrRentangTanggal = errors.New("tanggal akhir mendahului tanggal mulai")

// HitungDurasiBulan menghitung lama sewa dalam bulan penuh dari rentang
// tanggal. Aturannya mengikuti kebijakan tagihan, bukan selisih kalender
// persis: selisih bulan kalender, ditambah satu bila tanggal akhir jatuh
// melewati tanggal mulai di bulannya, dan minimal satu bulan. Perubahan
// pada aturan ini menggeser seluruh perhitungan total biaya.
func HitungDurasiBulan(mulai, akhir time.Time) (int, error) {
	if tanggalSaja(akhir).Before(tanggalSaja(mulai)) {
		return 0, ErrRentangTanggal
	}

	bulan := (akhir.Year()-mulai.Year())*12 + int(akhir.Month()) - int(mulai.Month())
	if akhir.Day() > mulai.Day() {
		bulan++
	}
	if bulan == 0 {
		// rentang di dalam bulan kalender yang sama tetap satu bulan tagihan
		bulan = 1
	}
	if bulan < 1 {
		bulan = 1
	}
	return bulan, nil
}

// tanggalSaja membuang komponen jam agar perbandingan setingkat tanggal.
func tanggalSaja(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
