package pembayaran

// Status tagihan sebuah kontrak, diturunkan dari total biaya dan
// jumlah yang sudah dibayar. Tidak pernah disimpan ke database.
type Status string

const (
	StatusLunas           Status = "Lunas"
	StatusKurangBayar     Status = "Kurang Bayar"
	StatusBelumBayar      Status = "Belum Bayar"
	StatusBelumAdaKontrak Status = "Belum Ada Kontrak"
)

// StatusDari mengklasifikasikan keadaan tagihan. Batas atas memakai >=
// sehingga bayar pas sama dengan total dihitung Lunas.
func StatusDari(totalBiaya, uangDibayar int64) Status {
	switch {
	case uangDibayar >= totalBiaya && totalBiaya > 0:
		return StatusLunas
	case uangDibayar > 0 && totalBiaya > 0:
		return StatusKurangBayar
	case totalBiaya > 0:
		return StatusBelumBayar
	default:
		return StatusBelumAdaKontrak
	}
}

// SisaTagihan menghitung kekurangan bayar; kelebihan bayar dipangkas ke
// nol, tidak pernah dilaporkan sebagai utang negatif.
func SisaTagihan(totalBiaya, uangDibayar int64) int64 {
	sisa := totalBiaya - uangDibayar
	if sisa < 0 {
		return 0
	}
	return sisa
}
