package pembayaran

import "time"

// ItemDaftar adalah baris daftar kontrak berikut data penyewanya
// dan nilai turunan yang dibaca tampilan.
type ItemDaftar struct {
	Pembayaran
	NamaPenyewa  string    `json:"nama_penyewa"`
	NIK          string    `json:"nik"`
	Email        string    `json:"email"`
	Telepon      string    `json:"telepon"`
	Alamat       string    `json:"alamat"`
	KtpPath      string    `json:"ktp_path"`
	NamaUnit     string    `json:"nama_unit"`
	StatusBayar  Status    `gorm:"-" json:"status_bayar"`
	SisaTagihan  int64     `gorm:"-" json:"sisa_tagihan"`
	SisaWaktuNow SisaWaktu `gorm:"-" json:"sisa_waktu"`
}

// ItemRiwayat adalah satu kejadian setor berikut total berjalan
// sampai kejadian tersebut.
type ItemRiwayat struct {
	RiwayatPembayaran
	TotalSampaiSini int64 `json:"total_sampai_sini"`
}

// TurunkanNilai mengisi kolom turunan sebuah baris daftar.
func (i *ItemDaftar) TurunkanNilai(now time.Time) {
	i.StatusBayar = StatusDari(i.Nominal, i.UangDibayar)
	i.SisaTagihan = SisaTagihan(i.Nominal, i.UangDibayar)
	i.SisaWaktuNow = HitungSisaWaktu(i.TanggalAkhir, now)
}

// SusunRiwayat menghitung total berjalan untuk deretan kejadian setor
// yang sudah terurut menurut tanggal bayar.
func SusunRiwayat(riwayat []RiwayatPembayaran) []ItemRiwayat {
	items := make([]ItemRiwayat, 0, len(riwayat))
	var total int64
	for _, r := range riwayat {
		total += r.JumlahDibayar
		items = append(items, ItemRiwayat{RiwayatPembayaran: r, TotalSampaiSini: total})
	}
	return items
}
