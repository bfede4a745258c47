package pengguna

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/kontrakanku/api-sewa/internal/auth"
	"github.com/kontrakanku/api-sewa/internal/utils"
)

type LoginRequest struct {
	Nama     string `json:"nama"`
	Password string `json:"password"`
}

// Handler membungkus DB dan repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Login memeriksa kredensial dan menerbitkan JWT untuk sesi dashboard.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Data login tidak valid", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.CariPerNama(h.DB, req.Nama)
	if err != nil {
		http.Error(w, "Nama pengguna atau password salah", http.StatusUnauthorized)
		return
	}

	if !utils.CekSandi(user.Sandi, req.Password) {
		http.Error(w, "Nama pengguna atau password salah", http.StatusUnauthorized)
		return
	}

	token, err := auth.BuatToken(user.ID, user.Role)
	if err != nil {
		http.Error(w, "Gagal membuat token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Login berhasil",
		"token":   token,
		"user": map[string]string{
			"nama": user.Nama,
			"role": user.Role,
		},
	})
}

// Logout hanya memberi respons; token dibuang di sisi klien.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Logout berhasil",
	})
}
