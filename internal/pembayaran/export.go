// internal/pembayaran/export.go
package pembayaran

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// BuatBukuKontrakXLSX menyusun buku kontrak: satu baris per kontrak
// dengan status dan sisa tagihan turunannya.
func BuatBukuKontrakXLSX(daftar []ItemDaftar, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "kontrak"
	f.SetSheetName("Sheet1", sheet)

	judul := []string{"ID", "Penyewa", "Unit", "Mulai", "Akhir", "Durasi (bulan)",
		"Harga Sewa", "Total Biaya", "Dibayar", "Sisa", "Status", "Sisa Waktu"}
	for i, j := range judul {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, j)
	}

	for n, item := range daftar {
		item.TurunkanNilai(now)
		akhir := ""
		if item.TanggalAkhir != nil {
			akhir = item.TanggalAkhir.Format("2006-01-02")
		}
		baris := []interface{}{
			item.ID,
			item.NamaPenyewa,
			item.NamaUnit,
			item.TanggalMulai.Format("2006-01-02"),
			akhir,
			item.DurasiBulan,
			item.HargaSewa,
			item.Nominal,
			item.UangDibayar,
			item.SisaTagihan,
			string(item.StatusBayar),
			string(item.SisaWaktuNow.Kategori),
		}
		for i, v := range baris {
			cell, _ := excelize.CoordinatesToCellName(i+1, n+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gagal menulis xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
