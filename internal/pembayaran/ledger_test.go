package pembayaran

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AkumulasiCicilan(t *testing.T) {
	waktu := tgl(2025, 1, 15)
	l := NewLedger(250000, 0, waktu, MetodeTransfer)

	status, sisa, err := l.Ringkasan()
	require.NoError(t, err)
	assert.Equal(t, StatusBelumBayar, status)
	assert.Equal(t, int64(250000), sisa)

	l, err = l.TambahPembayaran(100000, MetodeTransfer, "", waktu.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, StatusKurangBayar, l.Status())
	assert.Equal(t, int64(150000), l.Sisa())

	l, err = l.TambahPembayaran(100000, MetodeTunai, "", waktu.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, StatusKurangBayar, l.Status())
	assert.Equal(t, int64(50000), l.Sisa())

	l, err = l.TambahPembayaran(100000, MetodeTransfer, "pelunasan", waktu.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, StatusLunas, l.Status())
	// kelebihan bayar tidak membuat sisa negatif
	assert.Equal(t, int64(0), l.Sisa())
	assert.Equal(t, int64(300000), l.UangDibayar)
	assert.Len(t, l.Riwayat, 3)
}

func TestLedger_PembayaranAwal(t *testing.T) {
	l := NewLedger(1500000, 500000, tgl(2025, 2, 1), MetodeTransfer)
	require.Len(t, l.Riwayat, 1)
	assert.Equal(t, int64(500000), l.Riwayat[0].JumlahDibayar)
	assert.Equal(t, int64(500000), l.UangDibayar)
	assert.Equal(t, StatusKurangBayar, l.Status())
}

func TestLedger_TanpaPembayaranAwal(t *testing.T) {
	l := NewLedger(1500000, 0, tgl(2025, 2, 1), MetodeTransfer)
	assert.Empty(t, l.Riwayat)
	assert.Equal(t, StatusBelumBayar, l.Status())
}

func TestLedger_JumlahTidakValid(t *testing.T) {
	l := NewLedger(100000, 0, tgl(2025, 1, 1), MetodeTransfer)

	for _, jumlah := range []int64{0, -5} {
		_, err := l.TambahPembayaran(jumlah, MetodeTunai, "", tgl(2025, 1, 2))
		assert.ErrorIs(t, err, ErrJumlahPembayaran)
	}
	// ledger asal tidak berubah setelah penolakan
	assert.Empty(t, l.Riwayat)
	assert.Equal(t, int64(0), l.UangDibayar)
}

func TestLedger_TanpaKontrak(t *testing.T) {
	l := NewLedger(0, 0, tgl(2025, 1, 1), MetodeTransfer)
	_, _, err := l.Ringkasan()
	assert.ErrorIs(t, err, ErrTanpaKontrak)
}

func TestLedger_GantiTotalBiaya(t *testing.T) {
	waktu := tgl(2025, 1, 1)
	l := NewLedger(200000, 200000, waktu, MetodeTransfer)
	assert.Equal(t, StatusLunas, l.Status())

	// perpanjangan kontrak menaikkan total, riwayat tidak tersentuh
	l = l.GantiTotalBiaya(400000)
	assert.Equal(t, StatusKurangBayar, l.Status())
	assert.Equal(t, int64(200000), l.Sisa())
	assert.Len(t, l.Riwayat, 1)
}

func TestLedger_TambahTidakMengubahAsal(t *testing.T) {
	waktu := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	asal := NewLedger(300000, 100000, waktu, MetodeTransfer)

	turunan, err := asal.TambahPembayaran(200000, MetodeEWallet, "", waktu.AddDate(0, 0, 5))
	require.NoError(t, err)

	assert.Len(t, asal.Riwayat, 1)
	assert.Equal(t, int64(100000), asal.UangDibayar)
	assert.Len(t, turunan.Riwayat, 2)
	assert.Equal(t, int64(300000), turunan.UangDibayar)
}
