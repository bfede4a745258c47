package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func timep(t time.Time) *time.Time { return &t }

func TestHitung(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	kontrak := []KontrakRingkas{
		// lunas, masih berjalan
		{Nominal: 1000000, UangDibayar: int64p(1000000), TanggalAkhir: timep(now.AddDate(0, 2, 0))},
		// kurang bayar, jatuh tempo lima hari lagi
		{Nominal: 800000, UangDibayar: int64p(300000), TanggalAkhir: timep(now.AddDate(0, 0, 5))},
		// sudah berakhir bulan lalu
		{Nominal: 500000, UangDibayar: int64p(500000), TanggalAkhir: timep(now.AddDate(0, -1, 0))},
		// belum ada setoran: nilai kontraknya tetap dihitung pendapatan
		{Nominal: 600000, UangDibayar: int64p(0), TanggalAkhir: nil},
		// catatan lama tanpa kolom uang dibayar: dianggap terbayar penuh
		{Nominal: 400000, UangDibayar: nil, TanggalAkhir: timep(now.AddDate(0, 1, 0))},
	}

	s := Hitung(kontrak, 2, 3, now)

	assert.Equal(t, int64(2800000), s.TotalPendapatan)
	assert.Equal(t, 4, s.KontrakAktif)
	assert.Equal(t, 3, s.KontrakLunas)
	assert.Equal(t, 1, s.JatuhTempo)
	assert.Equal(t, 3, s.TotalUnit)
	assert.Equal(t, 2, s.UnitTerisi)
	require.NotNil(t, s.TingkatHunian)
	assert.Equal(t, 67, *s.TingkatHunian)
}

func TestHitung_PendapatanKontrakBelumDibayar(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	// setoran nol jatuh ke nominal, sama seperti kolom yang hilang
	s := Hitung([]KontrakRingkas{{Nominal: 600000, UangDibayar: int64p(0)}}, 0, 0, now)
	assert.Equal(t, int64(600000), s.TotalPendapatan)
	// tetapi untuk status, setoran nol bukan lunas
	assert.Equal(t, 0, s.KontrakLunas)

	s = Hitung([]KontrakRingkas{{Nominal: 600000, UangDibayar: nil}}, 0, 0, now)
	assert.Equal(t, int64(600000), s.TotalPendapatan)

	// begitu ada setoran sungguhan, setoran itulah pendapatannya
	s = Hitung([]KontrakRingkas{{Nominal: 600000, UangDibayar: int64p(250000)}}, 0, 0, now)
	assert.Equal(t, int64(250000), s.TotalPendapatan)
}

func TestHitung_BatasJendelaJatuhTempo(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	hariIni := timep(time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC))
	hariKetujuh := timep(time.Date(2025, 6, 22, 5, 0, 0, 0, time.UTC))
	hariKedelapan := timep(time.Date(2025, 6, 23, 5, 0, 0, 0, time.UTC))
	kemarin := timep(time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC))

	s := Hitung([]KontrakRingkas{
		{Nominal: 1, TanggalAkhir: hariIni},
		{Nominal: 1, TanggalAkhir: hariKetujuh},
		{Nominal: 1, TanggalAkhir: hariKedelapan},
		{Nominal: 1, TanggalAkhir: kemarin},
	}, 0, 0, now)

	// hari ini dan hari ketujuh masuk, di luar itu tidak
	assert.Equal(t, 2, s.JatuhTempo)
}

func TestHitung_TanpaUnit(t *testing.T) {
	s := Hitung(nil, 0, 0, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, s.TingkatHunian)
	assert.Zero(t, s.TotalUnit)
	assert.Zero(t, s.TotalPendapatan)
}
