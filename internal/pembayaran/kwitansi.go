// internal/pembayaran/kwitansi.go
package pembayaran

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// formatRupiah menulis nominal dengan pemisah ribuan gaya Indonesia.
func formatRupiah(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		s = s[1:]
	}
	var b []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			b = append(b, '.')
		}
		b = append(b, c)
	}
	if n < 0 {
		return "-Rp " + string(b)
	}
	return "Rp " + string(b)
}

// BuatKwitansiPDF menyusun kwitansi cetak untuk satu kontrak berikut
// deretan setorannya.
func BuatKwitansiPDF(item *ItemDaftar, riwayat []ItemRiwayat, now time.Time) ([]byte, error) {
	status, sisa, err := Ledger{TotalBiaya: item.Nominal, UangDibayar: item.UangDibayar}.Ringkasan()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Kwitansi Pembayaran Sewa")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Penyewa: %s", item.NamaPenyewa))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Unit: %s", item.NamaUnit))
	pdf.Ln(5)
	periode := item.TanggalMulai.Format("02 Jan 2006")
	if item.TanggalAkhir != nil {
		periode += " s/d " + item.TanggalAkhir.Format("02 Jan 2006")
	} else {
		periode += " (belum ditentukan)"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Periode: %s", periode))
	pdf.Ln(5)
	if item.DurasiBulan > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Durasi: %d bulan x %s", item.DurasiBulan, formatRupiah(item.HargaSewa)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total Biaya: %s", formatRupiah(item.Nominal)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sudah Dibayar: %s", formatRupiah(item.UangDibayar)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sisa Tagihan: %s", formatRupiah(sisa)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", status))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Dicetak: %s", now.Format("02 Jan 2006 15:04")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Tanggal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Jumlah", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Metode", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Total Berjalan", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, rw := range riwayat {
		pdf.CellFormat(40, 6, rw.TanggalBayar.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, formatRupiah(rw.JumlahDibayar), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, rw.MetodeBayar, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, formatRupiah(rw.TotalSampaiSini), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
