package pembayaran

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontrakanku/api-sewa/internal/berkas"
)

func setupHandler(t *testing.T) (*Handler, *mux.Router) {
	t.Helper()
	db := setupTestDB(t)
	h := &Handler{
		Repo:   NewRepository(db),
		Berkas: berkas.NewPenyimpanan(t.TempDir()),
	}

	r := mux.NewRouter()
	r.HandleFunc("/pembayaran", h.Daftar).Methods(http.MethodGet)
	r.HandleFunc("/pembayaran", h.Buat).Methods(http.MethodPost)
	r.HandleFunc("/pembayaran/{id}", h.Perbarui).Methods(http.MethodPut)
	r.HandleFunc("/pembayaran/{id}", h.Hapus).Methods(http.MethodDelete)
	r.HandleFunc("/pembayaran/{id}/riwayat", h.DaftarRiwayat).Methods(http.MethodGet)
	r.HandleFunc("/pembayaran/{id}/riwayat", h.TambahRiwayat).Methods(http.MethodPost)
	return h, r
}

func formRequest(t *testing.T, method, url string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_BuatKontrak(t *testing.T) {
	h, r := setupHandler(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran", map[string]string{
		"penyewa_id":    "1",
		"harga_sewa":    "500000",
		"tanggal_mulai": "2025-01-15",
		"tanggal_akhir": "2025-04-16",
		"uang_dibayar":  "500000",
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(StatusKurangBayar), body["status"])

	// 15 Jan s/d 16 Apr = 4 bulan, total 4 x 500000
	p, err := h.Repo.CariPerID(1)
	require.NoError(t, err)
	assert.Equal(t, 4, p.DurasiBulan)
	assert.Equal(t, int64(2000000), p.Nominal)
	assert.Equal(t, int64(500000), p.UangDibayar)

	// setoran pembuka tercatat sebagai kejadian riwayat
	riwayat, err := h.Repo.DaftarRiwayat(1)
	require.NoError(t, err)
	require.Len(t, riwayat, 1)
	assert.Equal(t, int64(500000), riwayat[0].JumlahDibayar)
}

func TestHandler_BuatKontrak_TotalEksplisitMenang(t *testing.T) {
	h, r := setupHandler(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran", map[string]string{
		"penyewa_id":    "1",
		"harga_sewa":    "500000",
		"tanggal_mulai": "2025-01-15",
		"tanggal_akhir": "2025-04-16",
		"total_biaya":   "1750000",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p, err := h.Repo.CariPerID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1750000), p.Nominal)
}

func TestHandler_BuatKontrak_Validasi(t *testing.T) {
	_, r := setupHandler(t)

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"tanpa penyewa", map[string]string{"tanggal_mulai": "2025-01-01"}},
		{"tanpa tanggal mulai", map[string]string{"penyewa_id": "1"}},
		{"rentang terbalik", map[string]string{
			"penyewa_id":    "1",
			"tanggal_mulai": "2025-01-20",
			"tanggal_akhir": "2025-01-10",
		}},
		{"metode asing", map[string]string{
			"penyewa_id":    "1",
			"tanggal_mulai": "2025-01-01",
			"metode_bayar":  "Barter",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran", tt.fields))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_TambahRiwayat(t *testing.T) {
	h, r := setupHandler(t)

	mulai := tgl(2025, 1, 1)
	kontrak := &Pembayaran{PenyewaID: 1, Nominal: 300000, TanggalMulai: mulai}
	require.NoError(t, h.Repo.Simpan(kontrak))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran/1/riwayat", map[string]string{
		"jumlah_dibayar": "100000",
		"metode_bayar":   "Tunai",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(100000), body["uang_dibayar"])
	assert.Equal(t, string(StatusKurangBayar), body["status"])
	assert.Equal(t, float64(200000), body["sisa_tagihan"])

	// pelunasan
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran/1/riwayat", map[string]string{
		"jumlah_dibayar": "200000",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(StatusLunas), body["status"])
	assert.Equal(t, float64(0), body["sisa_tagihan"])
}

func TestHandler_TambahRiwayat_JumlahNol(t *testing.T) {
	h, r := setupHandler(t)
	require.NoError(t, h.Repo.Simpan(&Pembayaran{PenyewaID: 1, Nominal: 300000}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran/1/riwayat", map[string]string{
		"jumlah_dibayar": "0",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_TambahRiwayat_TanpaKontrak(t *testing.T) {
	h, r := setupHandler(t)
	// kontrak tanpa total biaya: setoran belum bisa diterima
	require.NoError(t, h.Repo.Simpan(&Pembayaran{PenyewaID: 1, Nominal: 0}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPost, "/pembayaran/1/riwayat", map[string]string{
		"jumlah_dibayar": "100000",
	}))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_HapusTidakAda(t *testing.T) {
	_, r := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/pembayaran/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func formRequestDenganBerkas(t *testing.T, method, url string, fields map[string]string, fileField string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(fileField, "bukti.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("isi berkas"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_BuatKontrak_GagalSimpanKwitansi(t *testing.T) {
	h, r := setupHandler(t)
	// direktori dasar diganti sebuah berkas biasa agar penyimpanan gagal
	berkasBiasa := filepath.Join(t.TempDir(), "bukan-direktori")
	require.NoError(t, os.WriteFile(berkasBiasa, []byte("x"), 0o600))
	h.Berkas = berkas.NewPenyimpanan(berkasBiasa)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequestDenganBerkas(t, http.MethodPost, "/pembayaran", map[string]string{
		"penyewa_id":    "1",
		"tanggal_mulai": "2025-01-01",
	}, "kwitansi"))

	// unggahan gagal harus terlihat, bukan sukses diam-diam tanpa path
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	_, err := h.Repo.CariPerID(1)
	assert.Error(t, err)
}

func TestHandler_Perbarui_GagalTandaiUnit(t *testing.T) {
	h, r := setupHandler(t)
	mulai := tgl(2025, 1, 1)
	require.NoError(t, h.Repo.Simpan(&Pembayaran{PenyewaID: 1, Nominal: 500000, TanggalMulai: mulai}))

	// tabel propertis hilang: penandaan unit pasti gagal
	require.NoError(t, h.Repo.DB.Exec("DROP TABLE propertis").Error)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, formRequest(t, http.MethodPut, "/pembayaran/1", map[string]string{
		"properti_id": "1",
	}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
