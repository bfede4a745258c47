package penyewa

import "github.com/kontrakanku/api-sewa/internal/pembayaran"

// ItemDaftar adalah baris daftar penyewa berikut unit yang ditempati
// dan status bayar turunan dari kontraknya.
type ItemDaftar struct {
	Penyewa
	NamaProperti string            `json:"nama_properti"`
	FotoProperti string            `json:"foto_properti"`
	TotalBiaya   int64             `json:"total_biaya"`
	UangDibayar  int64             `json:"uang_dibayar"`
	StatusBayar  pembayaran.Status `gorm:"-" json:"status_bayar"`
}

// TurunkanStatus mengisi status bayar dari angka kontrak yang ter-join.
func (i *ItemDaftar) TurunkanStatus() {
	i.StatusBayar = pembayaran.StatusDari(i.TotalBiaya, i.UangDibayar)
}
