package pembayaran

import "time"

// KategoriWaktu mengelompokkan seberapa dekat kontrak ke tanggal berakhirnya.
type KategoriWaktu string

const (
	WaktuBelumDitentukan KategoriWaktu = "Belum ditentukan"
	WaktuBerakhir        KategoriWaktu = "BERAKHIR"
	WaktuBerakhirHariIni KategoriWaktu = "BERAKHIR HARI INI"
	WaktuSegeraBerakhir  KategoriWaktu = "SEGERA BERAKHIR"
	WaktuAkanBerakhir    KategoriWaktu = "AKAN BERAKHIR"
	WaktuBerjalan        KategoriWaktu = "BERJALAN"
)

// SisaWaktu adalah hasil klasifikasi sisa masa kontrak.
// Persentase hanya dipakai untuk tampilan progres di dashboard.
type SisaWaktu struct {
	Kategori     KategoriWaktu `json:"kategori"`
	SisaHari     int64         `json:"sisa_hari"`
	HariTerlewat int64         `json:"hari_terlewat"`
	Persentase   int           `json:"persentase"`
}

const milidetikPerHari = 24 * 60 * 60 * 1000

// HitungSisaWaktu mengklasifikasikan tanggal akhir kontrak terhadap waktu
// sekarang. Selisih hari dihitung dengan pembagian milidetik dibulatkan ke
// atas; batas 7 dan 30 hari inklusif karena dashboard bergantung padanya
// untuk peringatan jatuh tempo.
func HitungSisaWaktu(akhir *time.Time, now time.Time) SisaWaktu {
	if akhir == nil {
		return SisaWaktu{Kategori: WaktuBelumDitentukan}
	}

	hari := bagiKeAtas(akhir.Sub(now).Milliseconds(), milidetikPerHari)

	switch {
	case hari < 0:
		return SisaWaktu{Kategori: WaktuBerakhir, SisaHari: hari, HariTerlewat: -hari, Persentase: 100}
	case hari == 0:
		return SisaWaktu{Kategori: WaktuBerakhirHariIni, Persentase: 100}
	case hari <= 7:
		return SisaWaktu{Kategori: WaktuSegeraBerakhir, SisaHari: hari, Persentase: 90}
	case hari <= 30:
		return SisaWaktu{Kategori: WaktuAkanBerakhir, SisaHari: hari, Persentase: 80}
	default:
		return SisaWaktu{Kategori: WaktuBerjalan, SisaHari: hari, Persentase: 50}
	}
}

// bagiKeAtas membulatkan hasil bagi ke atas, juga untuk nilai negatif
// (meniru Math.ceil: -1,5 menjadi -1).
func bagiKeAtas(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
