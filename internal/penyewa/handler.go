package penyewa

import (
	"encoding/json"
	"errors"
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

// GET /penyewa
func (h *Handler) Daftar(w http.ResponseWriter, r *http.Request) {
	daftar, err := h.Repo.DaftarDenganStatus()
	if err != nil {
		http.Error(w, "Gagal mengambil data penyewa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(daftar)
}

// POST /penyewa
func (h *Handler) Buat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUkuranForm); err != nil {
		http.Error(w, "Form tidak dapat dibaca", http.StatusBadRequest)
		return
	}

	p := Penyewa{
		Nama:    strings.TrimSpace(r.FormValue("nama")),
		NIK:     r.FormValue("nik"),
		Email:   r.FormValue("email"),
		Telepon: strings.TrimSpace(r.FormValue("telepon")),
		Alamat:  r.FormValue("alamat"),
	}
	if p.Nama == "" || p.Telepon == "" {
		http.Error(w, "Nama dan telepon wajib diisi", http.StatusBadRequest)
		return
	}

	if fhs := r.MultipartForm.File["ktp"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "ktp")
		if err != nil {
			http.Error(w, "Gagal menyimpan berkas KTP", http.StatusInternalServerError)
			return
		}
		p.KtpPath = path
	}

	if err := h.Repo.Simpan(&p); err != nil {
		http.Error(w, "Gagal menyimpan penyewa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":       p.ID,
		"message":  "Penyewa berhasil ditambahkan",
		"ktp_path": p.KtpPath,
	})
}

// PUT /penyewa/{id}
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
		http.Error(w, "Penyewa tidak ditemukan", http.StatusNotFound)
		return
	}

	nama := strings.TrimSpace(r.FormValue("nama"))
	telepon := strings.TrimSpace(r.FormValue("telepon"))
	if nama == "" || telepon == "" {
		http.Error(w, "Nama dan telepon wajib diisi", http.StatusBadRequest)
		return
	}
	p.Nama = nama
	p.Telepon = telepon
	p.NIK = r.FormValue("nik")
	p.Email = r.FormValue("email")
	p.Alamat = r.FormValue("alamat")
	// status bayar tidak diterima dari form: selalu diturunkan dari kontrak

	if fhs := r.MultipartForm.File["ktp"]; len(fhs) > 0 {
		path, err := h.Berkas.Simpan(fhs[0], "ktp")
		if err != nil {
			http.Error(w, "Gagal menyimpan berkas KTP", http.StatusInternalServerError)
			return
		}
		p.KtpPath = path
	}

	if err := h.Repo.Perbarui(p); err != nil {
		http.Error(w, "Gagal memperbarui penyewa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Penyewa berhasil diperbarui"})
}

// DELETE /penyewa/{id}
func (h *Handler) Hapus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Hapus(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Penyewa tidak ditemukan", http.StatusNotFound)
			return
		}
		http.Error(w, "Gagal menghapus penyewa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Penyewa berhasil dihapus"})
}
