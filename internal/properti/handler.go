package properti

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kontrakanku/api-sewa/internal/berkas"
)

const maxUkuranForm = 10 << 20 // 10 MiB

type Handler struct {
	Repo   *Repository
	Berkas *berkas.Penyimpanan
}

func NewHandler(db *gorm.DB, simpanan *berkas.Penyimpanan) *Handler {
	return &Handler{Repo: NewRepository(db), Berkas: simpanan}
}

// GET /properti
func (h *Handler) Daftar(w http.ResponseWriter, r *http.Request) {
	daftar, err := h.Repo.DaftarDenganPenyewa()
	if err != nil {
		http.Error(w, "Gagal mengambil data properti", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(daftar)
}

// POST /properti
func (h *Handler) Buat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUkuranForm); err != nil {
		http.Error(w, "Form tidak dapat dibaca", http.StatusBadRequest)
		return
	}

	p := Properti{
		NamaUnit: strings.TrimSpace(r.FormValue("nama_unit")),
		Tipe:     r.FormValue("tipe"),
		Status:   r.FormValue("status"),
	}
	if p.NamaUnit == "" {
		http.Error(w, "Nama unit wajib diisi", http.StatusBadRequest)
		return
	}
	if p.Status == "" {
		p.Status = StatusKosong
	}
	if !StatusValid(p.Status) {
		http.Error(w, "Status unit tidak dikenal", http.StatusBadRequest)
		return
	}
	if v := r.FormValue("harga_sewa"); v != "" {
		harga, err := strconv.ParseInt(v, 10, 64)
		if err != nil || harga < 0 {
			http.Error(w, "Harga sewa tidak valid", http.StatusBadRequest)
			return
		}
		p.HargaSewa = harga
	}

	if fhs := r.MultipartForm.File["foto"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "properti")
		if err != nil {
			http.Error(w, "Gagal menyimpan foto unit", http.StatusInternalServerError)
			return
		}
		p.FotoPath = path
	}

	if err := h.Repo.Simpan(&p); err != nil {
		http.Error(w, "Gagal menyimpan properti", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// PUT /properti/{id}
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
		http.Error(w, "Properti tidak ditemukan", http.StatusNotFound)
		return
	}

	if v := r.FormValue("nama_unit"); v != "" {
		p.NamaUnit = v
	}
	if v := r.FormValue("tipe"); v != "" {
		p.Tipe = v
	}
	if v := r.FormValue("status"); v != "" {
		if !StatusValid(v) {
			http.Error(w, "Status unit tidak dikenal", http.StatusBadRequest)
			return
		}
		p.Status = v
	}
	if v := r.FormValue("harga_sewa"); v != "" {
		harga, err := strconv.ParseInt(v, 10, 64)
		if err != nil || harga < 0 {
			http.Error(w, "Harga sewa tidak valid", http.StatusBadRequest)
			return
		}
		p.HargaSewa = harga
	}

	if fhs := r.MultipartForm.File["foto"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "properti")
		if err != nil {
			http.Error(w, "Gagal menyimpan foto unit", http.StatusInternalServerError)
			return
		}
		p.FotoPath = path
	}

	if err := h.Repo.Perbarui(p); err != nil {
		http.Error(w, "Gagal memperbarui properti", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// DELETE /properti/{id}
func (h *Handler) Hapus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Hapus(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Properti tidak ditemukan", http.StatusNotFound)
			return
		}
		http.Error(w, "Gagal menghapus properti", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Properti berhasil dihapus"})
}
