package pembayaran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDari(t *testing.T) {
	tests := []struct {
		name        string
		totalBiaya  int64
		uangDibayar int64
		want        Status
	}{
		{"lunas saat lebih", 100000, 150000, StatusLunas},
		{"bayar pas tetap lunas", 100000, 100000, StatusLunas},
		{"kurang bayar", 100000, 50000, StatusKurangBayar},
		{"belum bayar", 100000, 0, StatusBelumBayar},
		{"belum ada kontrak", 0, 0, StatusBelumAdaKontrak},
		{"setoran tanpa kontrak", 0, 50000, StatusBelumAdaKontrak},
		{"satu rupiah kurang", 100000, 99999, StatusKurangBayar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusDari(tt.totalBiaya, tt.uangDibayar))
		})
	}
}

func TestSisaTagihan(t *testing.T) {
	assert.Equal(t, int64(50000), SisaTagihan(100000, 50000))
	assert.Equal(t, int64(0), SisaTagihan(100000, 100000))
	// kelebihan bayar tidak pernah jadi utang negatif
	assert.Equal(t, int64(0), SisaTagihan(100000, 175000))
	assert.Equal(t, int64(0), SisaTagihan(0, 0))
}
