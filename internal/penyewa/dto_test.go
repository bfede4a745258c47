package penyewa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kontrakanku/api-sewa/internal/pembayaran"
)

func TestTurunkanStatus(t *testing.T) {
	tests := []struct {
		name string
		item ItemDaftar
		want pembayaran.Status
	}{
		{"lunas", ItemDaftar{TotalBiaya: 500000, UangDibayar: 500000}, pembayaran.StatusLunas},
		{"kurang bayar", ItemDaftar{TotalBiaya: 500000, UangDibayar: 200000}, pembayaran.StatusKurangBayar},
		{"belum bayar", ItemDaftar{TotalBiaya: 500000, UangDibayar: 0}, pembayaran.StatusBelumBayar},
		{"tanpa kontrak", ItemDaftar{}, pembayaran.StatusBelumAdaKontrak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.TurunkanStatus()
			assert.Equal(t, tt.want, tt.item.StatusBayar)
		})
	}
}
