package pembayaran

import (
	"errors"
	"time"
)

var (
	// ErrJumlahPembayaran dikembalikan untuk setoran nol atau negatif.
	ErrJumlahPembayaran = errors.New("jumlah pembayaran harus lebih dari nol")
	// ErrTanpaKontrak dikembalikan bila tagihan diminta padahal total
	// biaya kontrak belum ditetapkan.
	ErrTanpaKontrak = errors.New("total biaya kontrak belum ditetapkan")
)

// Ledger adalah keadaan tagihan satu kontrak sebagai nilai immutable:
// setiap setoran menghasilkan Ledger baru, riwayat lama tidak disentuh.
type Ledger struct {
	TotalBiaya  int64
	UangDibayar int64
	Riwayat     []RiwayatPembayaran
}

// NewLedger membuka ledger untuk sebuah kontrak. Pembayaran awal nol sah:
// kontrak sudah dibuat, setoran menyusul.
func NewLedger(totalBiaya, pembayaranAwal int64, waktu time.Time, metode string) Ledger {
	l := Ledger{TotalBiaya: totalBiaya}
	if pembayaranAwal > 0 {
		l.UangDibayar = pembayaranAwal
		l.Riwayat = []RiwayatPembayaran{{
			JumlahDibayar: pembayaranAwal,
			TanggalBayar:  waktu,
			MetodeBayar:   metode,
			Keterangan:    "Pembayaran awal",
		}}
	}
	return l
}

// TambahPembayaran mencatat satu setoran dan mengembalikan ledger baru.
// Total berjalan tidak pernah turun; riwayat hanya bertambah di ekor.
func (l Ledger) TambahPembayaran(jumlah int64, metode, keterangan string, waktu time.Time) (Ledger, error) {
	if jumlah <= 0 {
		return l, ErrJumlahPembayaran
	}

	baru := Ledger{
		TotalBiaya:  l.TotalBiaya,
		UangDibayar: l.UangDibayar + jumlah,
		Riwayat:     make([]RiwayatPembayaran, len(l.Riwayat), len(l.Riwayat)+1),
	}
	copy(baru.Riwayat, l.Riwayat)
	baru.Riwayat = append(baru.Riwayat, RiwayatPembayaran{
		JumlahDibayar: jumlah,
		TanggalBayar:  waktu,
		MetodeBayar:   metode,
		Keterangan:    keterangan,
	})
	return baru, nil
}

// Status mengklasifikasikan keadaan tagihan ledger saat ini.
func (l Ledger) Status() Status {
	return StatusDari(l.TotalBiaya, l.UangDibayar)
}

// Sisa mengembalikan kekurangan bayar, dipangkas ke nol.
func (l Ledger) Sisa() int64 {
	return SisaTagihan(l.TotalBiaya, l.UangDibayar)
}

// Ringkasan mengembalikan status dan sisa tagihan sekaligus. Bila total
// biaya belum ditetapkan tidak ada yang bisa ditagih dan error
// ErrTanpaKontrak dikembalikan.
func (l Ledger) Ringkasan() (Status, int64, error) {
	if l.TotalBiaya == 0 {
		return StatusBelumAdaKontrak, 0, ErrTanpaKontrak
	}
	return l.Status(), l.Sisa(), nil
}

// GantiTotalBiaya menetapkan total biaya baru tanpa menulis ulang riwayat;
// hanya status turunannya yang ikut berubah.
func (l Ledger) GantiTotalBiaya(totalBiaya int64) Ledger {
	l.TotalBiaya = totalBiaya
	return l
}
