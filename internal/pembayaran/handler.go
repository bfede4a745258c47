// internal/pembayaran/handler.go
package pembayaran

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kontrakanku/api-sewa/internal/berkas"
	"github.com/kontrakanku/api-sewa/internal/notifikasi"
)

const maxUkuranForm = 10 << 20 // 10 MiB

type Handler struct {
	Repo    *Repository
	Berkas  *berkas.Penyimpanan
	Webhook *notifikasi.Webhook
}

func NewHandler(db *gorm.DB, simpanan *berkas.Penyimpanan, webhook *notifikasi.Webhook) *Handler {
	return &Handler{Repo: NewRepository(db), Berkas: simpanan, Webhook: webhook}
}

// parseTanggal menerima tanggal ISO dengan atau tanpa jam.
func parseTanggal(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("format tanggal tidak dikenali")
}

// GET /pembayaran
func (h *Handler) Daftar(w http.ResponseWriter, r *http.Request) {
	daftar, err := h.Repo.DaftarLengkap()
	if err != nil {
		http.Error(w, "Gagal mengambil data pembayaran", http.StatusInternalServerError)
		return
	}
	now := time.Now()
	for i := range daftar {
		daftar[i].TurunkanNilai(now)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(daftar)
}

// POST /pembayaran
// Membuat kontrak baru. Durasi dan total dihitung dari rentang tanggal,
// tetapi total_biaya dari form menang bila diisi.
func (h *Handler) Buat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUkuranForm); err != nil {
		http.Error(w, "Form tidak dapat dibaca", http.StatusBadRequest)
		return
	}

	penyewaID, err := strconv.Atoi(r.FormValue("penyewa_id"))
	if err != nil || penyewaID <= 0 {
		http.Error(w, "Penyewa wajib dipilih", http.StatusBadRequest)
		return
	}
	if r.FormValue("tanggal_mulai") == "" {
		http.Error(w, "Tanggal mulai wajib diisi", http.StatusBadRequest)
		return
	}
	mulai, err := parseTanggal(r.FormValue("tanggal_mulai"))
	if err != nil {
		http.Error(w, "Tanggal mulai tidak valid", http.StatusBadRequest)
		return
	}

	p := Pembayaran{
		PenyewaID:    uint(penyewaID),
		TanggalMulai: mulai,
		TanggalBayar: mulai,
		MetodeBayar:  r.FormValue("metode_bayar"),
		Keterangan:   r.FormValue("keterangan"),
	}
	if p.MetodeBayar == "" {
		p.MetodeBayar = MetodeTransfer
	}
	if !MetodeValid(p.MetodeBayar) {
		http.Error(w, "Metode bayar tidak dikenal", http.StatusBadRequest)
		return
	}
	if v := r.FormValue("properti_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Properti tidak valid", http.StatusBadRequest)
			return
		}
		p.PropertiID = uint(id)
	}
	if v := r.FormValue("harga_sewa"); v != "" {
		harga, err := strconv.ParseInt(v, 10, 64)
		if err != nil || harga < 0 {
			http.Error(w, "Harga sewa tidak valid", http.StatusBadRequest)
			return
		}
		p.HargaSewa = harga
	}

	if v := r.FormValue("tanggal_akhir"); v != "" {
		akhir, err := parseTanggal(v)
		if err != nil {
			http.Error(w, "Tanggal akhir tidak valid", http.StatusBadRequest)
			return
		}
		durasi, err := HitungDurasiBulan(mulai, akhir)
		if err != nil {
			http.Error(w, "Tanggal akhir mendahului tanggal mulai", http.StatusBadRequest)
			return
		}
		p.TanggalAkhir = &akhir
		p.DurasiBulan = durasi
		p.Nominal = p.HargaSewa * int64(durasi)
	}

	// total_biaya eksplisit menjadi acuan, hasil kalkulasi hanya usulan
	if v := r.FormValue("total_biaya"); v != "" {
		total, err := strconv.ParseInt(v, 10, 64)
		if err != nil || total < 0 {
			http.Error(w, "Total biaya tidak valid", http.StatusBadRequest)
			return
		}
		p.Nominal = total
	}

	var uangDibayar int64
	if v := r.FormValue("uang_dibayar"); v != "" {
		uangDibayar, err = strconv.ParseInt(v, 10, 64)
		if err != nil || uangDibayar < 0 {
			http.Error(w, "Uang dibayar tidak valid", http.StatusBadRequest)
			return
		}
	}

	if fhs := r.MultipartForm.File["kwitansi"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "kwitansi")
		if err != nil {
			http.Error(w, "Gagal menyimpan berkas kwitansi", http.StatusInternalServerError)
			return
		}
		p.KwitansiPath = path
	}

	ledger := NewLedger(p.Nominal, uangDibayar, p.TanggalBayar, p.MetodeBayar)
	p.UangDibayar = ledger.UangDibayar
	p.Riwayat = ledger.Riwayat

	if err := h.Repo.Simpan(&p); err != nil {
		http.Error(w, "Gagal menyimpan kontrak", http.StatusInternalServerError)
		return
	}

	if p.PropertiID != 0 {
		if err := h.Repo.TandaiUnitTerisi(p.PropertiID, p.PenyewaID, p.TanggalMulai); err != nil {
			// kontrak sudah tersimpan; penandaan unit gagal bukan alasan rollback
			http.Error(w, "Kontrak tersimpan tetapi status unit gagal diperbarui", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":            p.ID,
		"message":       "Kontrak berhasil dibuat",
		"kwitansi_path": p.KwitansiPath,
		"status":        StatusDari(p.Nominal, p.UangDibayar),
	})
}

// PUT /pembayaran/{id}
// Mengubah kontrak. Riwayat setoran lama tidak pernah ditulis ulang;
// hanya nominal (dan status turunannya) yang bergeser.
func (h *Handler) Perbarui(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxUkuranForm); err != nil {
		http.Error(w, "Form tidak dapat dibaca", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.CariPerID(uint(id))
	if err != nil {
		http.Error(w, "Kontrak tidak ditemukan", http.StatusNotFound)
		return
	}

	if v := r.FormValue("penyewa_id"); v != "" {
		pid, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Penyewa tidak valid", http.StatusBadRequest)
			return
		}
		p.PenyewaID = uint(pid)
	}
	if v := r.FormValue("properti_id"); v != "" {
		pid, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Properti tidak valid", http.StatusBadRequest)
			return
		}
		p.PropertiID = uint(pid)
	}
	if v := r.FormValue("harga_sewa"); v != "" {
		harga, err := strconv.ParseInt(v, 10, 64)
		if err != nil || harga < 0 {
			http.Error(w, "Harga sewa tidak valid", http.StatusBadRequest)
			return
		}
		p.HargaSewa = harga
	}
	if v := r.FormValue("metode_bayar"); v != "" {
		if !MetodeValid(v) {
			http.Error(w, "Metode bayar tidak dikenal", http.StatusBadRequest)
			return
		}
		p.MetodeBayar = v
	}
	if v := r.FormValue("tanggal_mulai"); v != "" {
		mulai, err := parseTanggal(v)
		if err != nil {
			http.Error(w, "Tanggal mulai tidak valid", http.StatusBadRequest)
			return
		}
		p.TanggalMulai = mulai
	}
	if v := r.FormValue("tanggal_akhir"); v != "" {
		akhir, err := parseTanggal(v)
		if err != nil {
			http.Error(w, "Tanggal akhir tidak valid", http.StatusBadRequest)
			return
		}
		durasi, err := HitungDurasiBulan(p.TanggalMulai, akhir)
		if err != nil {
			http.Error(w, "Tanggal akhir mendahului tanggal mulai", http.StatusBadRequest)
			return
		}
		p.TanggalAkhir = &akhir
		p.DurasiBulan = durasi
	}
	if v := r.FormValue("total_biaya"); v != "" {
		total, err := strconv.ParseInt(v, 10, 64)
		if err != nil || total < 0 {
			http.Error(w, "Total biaya tidak valid", http.StatusBadRequest)
			return
		}
		p.Nominal = total
	}

	if fhs := r.MultipartForm.File["kwitansi"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "kwitansi")
		if err != nil {
			http.Error(w, "Gagal menyimpan berkas kwitansi", http.StatusInternalServerError)
			return
		}
		p.KwitansiPath = path
	}

	if err := h.Repo.Perbarui(p); err != nil {
		http.Error(w, "Gagal memperbarui kontrak", http.StatusInternalServerError)
		return
	}

	if p.PropertiID != 0 {
		if err := h.Repo.TandaiUnitTerisi(p.PropertiID, p.PenyewaID, p.TanggalMulai); err != nil {
			http.Error(w, "Kontrak diperbarui tetapi status unit gagal diperbarui", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Pembayaran berhasil diupdate",
		"status":  StatusDari(p.Nominal, p.UangDibayar),
	})
}

// DELETE /pembayaran/{id}
func (h *Handler) Hapus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Hapus(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Kontrak tidak ditemukan", http.StatusNotFound)
			return
		}
		http.Error(w, "Gagal menghapus kontrak", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Pembayaran berhasil dihapus"})
}

// GET /pembayaran/{id}/riwayat
func (h *Handler) DaftarRiwayat(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	riwayat, err := h.Repo.DaftarRiwayat(uint(id))
	if err != nil {
		http.Error(w, "Gagal mengambil riwayat", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SusunRiwayat(riwayat))
}

// POST /pembayaran/{id}/riwayat
// Mencatat setoran tambahan. Satu-satunya jalur yang mengubah keadaan
// uang sebuah kontrak yang sudah ada.
func (h *Handler) TambahRiwayat(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxUkuranForm); err != nil {
		http.Error(w, "Form tidak dapat dibaca", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.CariPerID(uint(id))
	if err != nil {
		http.Error(w, "Kontrak tidak ditemukan", http.StatusNotFound)
		return
	}

	jumlah, err := strconv.ParseInt(r.FormValue("jumlah_dibayar"), 10, 64)
	if err != nil {
		http.Error(w, "Jumlah dibayar tidak valid", http.StatusBadRequest)
		return
	}
	metode := r.FormValue("metode_bayar")
	if metode == "" {
		metode = MetodeTransfer
	}
	if !MetodeValid(metode) {
		http.Error(w, "Metode bayar tidak dikenal", http.StatusBadRequest)
		return
	}

	ledger := Ledger{TotalBiaya: p.Nominal, UangDibayar: p.UangDibayar}
	if _, _, err := ledger.Ringkasan(); errors.Is(err, ErrTanpaKontrak) {
		http.Error(w, "Total biaya kontrak belum ditetapkan", http.StatusConflict)
		return
	}
	ledgerBaru, err := ledger.TambahPembayaran(jumlah, metode, r.FormValue("keterangan"), time.Now())
	if err != nil {
		http.Error(w, "Jumlah pembayaran harus lebih dari nol", http.StatusBadRequest)
		return
	}

	rw := ledgerBaru.Riwayat[len(ledgerBaru.Riwayat)-1]
	if fhs := r.MultipartForm.File["kwitansi"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "kwitansi")
		if err != nil {
			http.Error(w, "Gagal menyimpan berkas kwitansi", http.StatusInternalServerError)
			return
		}
		rw.KwitansiPath = path
	}

	totalBaru, err := h.Repo.TambahRiwayat(p.ID, &rw)
	if err != nil {
		http.Error(w, "Gagal menyimpan riwayat", http.StatusInternalServerError)
		return
	}

	status := StatusDari(p.Nominal, totalBaru)
	if h.Webhook != nil {
		sisaWaktu := HitungSisaWaktu(p.TanggalAkhir, time.Now())
		if status != StatusLunas &&
			(sisaWaktu.Kategori == WaktuSegeraBerakhir || sisaWaktu.Kategori == WaktuBerakhirHariIni) {
			go h.Webhook.PeringatanJatuhTempo(p.ID, sisaWaktu.SisaHari, SisaTagihan(p.Nominal, totalBaru))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Riwayat pembayaran berhasil ditambahkan",
		"uang_dibayar": totalBaru,
		"status":       status,
		"sisa_tagihan": SisaTagihan(p.Nominal, totalBaru),
	})
}

// GET /pembayaran/{id}/kwitansi.pdf
func (h *Handler) Kwitansi(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	item, err := h.Repo.CariLengkapPerID(uint(id))
	if err != nil {
		http.Error(w, "Kontrak tidak ditemukan", http.StatusNotFound)
		return
	}
	riwayat, err := h.Repo.DaftarRiwayat(item.ID)
	if err != nil {
		http.Error(w, "Gagal mengambil riwayat", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := BuatKwitansiPDF(item, SusunRiwayat(riwayat), time.Now())
	if err != nil {
		if errors.Is(err, ErrTanpaKontrak) {
			http.Error(w, "Total biaya kontrak belum ditetapkan", http.StatusConflict)
			return
		}
		http.Error(w, "Gagal membuat kwitansi", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=kwitansi-%d.pdf", item.ID))
	w.Write(pdfBytes)
}

// GET /pembayaran/export.xlsx
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	daftar, err := h.Repo.DaftarLengkap()
	if err != nil {
		http.Error(w, "Gagal mengambil data pembayaran", http.StatusInternalServerError)
		return
	}
	xlsx, err := BuatBukuKontrakXLSX(daftar, time.Now())
	if err != nil {
		http.Error(w, "Gagal membuat berkas ekspor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=buku-kontrak.xlsx")
	w.Write(xlsx)
}
