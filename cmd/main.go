package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/kontrakanku/api-sewa/internal/auth"
	"github.com/kontrakanku/api-sewa/internal/berkas"
	"github.com/kontrakanku/api-sewa/internal/config"
	"github.com/kontrakanku/api-sewa/internal/dashboard"
	"github.com/kontrakanku/api-sewa/internal/notifikasi"
	"github.com/kontrakanku/api-sewa/internal/pembayaran"
	"github.com/kontrakanku/api-sewa/internal/pengguna"
	"github.com/kontrakanku/api-sewa/internal/penyewa"
	"github.com/kontrakanku/api-sewa/internal/properti"
	"github.com/kontrakanku/api-sewa/internal/utils/db"
)

func main() {
	// .env hanya untuk development; di produksi variabel datang dari environment
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Konfigurasi tidak valid: ", err)
	}
	auth.SetSecret(cfg.Auth.JWTSecret)

	database, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("Gagal terhubung ke database: ", err)
	}

	if err := properti.Migrate(database); err != nil {
		log.Fatal("Gagal migrasi properti: ", err)
	}
	if err := penyewa.Migrate(database); err != nil {
		log.Fatal("Gagal migrasi penyewa: ", err)
	}
	if err := pembayaran.Migrate(database); err != nil {
		log.Fatal("Gagal migrasi pembayaran: ", err)
	}
	if err := pengguna.Migrate(database); err != nil {
		log.Fatal("Gagal migrasi pengguna: ", err)
	}

	simpanan := berkas.NewPenyimpanan(cfg.App.UploadDir)
	webhook := notifikasi.New(cfg.Notifikasi.WebhookURL)

	// Handlers
	penggunaHandler := pengguna.NewHandler(database)
	propertiHandler := properti.NewHandler(database, simpanan)
	penyewaHandler := penyewa.NewHandler(database, simpanan)
	pembayaranHandler := pembayaran.NewHandler(database, simpanan, webhook)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rute tanpa autentikasi
	r.HandleFunc("/login", penggunaHandler.Login).Methods("POST")
	r.HandleFunc("/logout", penggunaHandler.Logout).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.App.UploadDir))))

	// Rute terlindungi: wajib token, operasi tulis ditolak untuk akun demo
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutentikasi)
	api.Use(auth.TolakDemo)

	api.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")

	// Rute properti
	api.HandleFunc("/properti", propertiHandler.Daftar).Methods("GET")
	api.HandleFunc("/properti", propertiHandler.Buat).Methods("POST")
	api.HandleFunc("/properti/{id}", propertiHandler.Perbarui).Methods("PUT")
	api.HandleFunc("/properti/{id}", propertiHandler.Hapus).Methods("DELETE")

	// Rute penyewa
	api.HandleFunc("/penyewa", penyewaHandler.Daftar).Methods("GET")
	api.HandleFunc("/penyewa", penyewaHandler.Buat).Methods("POST")
	api.HandleFunc("/penyewa/{id}", penyewaHandler.Perbarui).Methods("PUT")
	api.HandleFunc("/penyewa/{id}", penyewaHandler.Hapus).Methods("DELETE")

	// Rute pembayaran
	api.HandleFunc("/pembayaran", pembayaranHandler.Daftar).Methods("GET")
	api.HandleFunc("/pembayaran", pembayaranHandler.Buat).Methods("POST")
	api.HandleFunc("/pembayaran/export.xlsx", pembayaranHandler.Export).Methods("GET")
	api.HandleFunc("/pembayaran/{id}", pembayaranHandler.Perbarui).Methods("PUT")
	api.HandleFunc("/pembayaran/{id}", pembayaranHandler.Hapus).Methods("DELETE")
	api.HandleFunc("/pembayaran/{id}/riwayat", pembayaranHandler.DaftarRiwayat).Methods("GET")
	api.HandleFunc("/pembayaran/{id}/riwayat", pembayaranHandler.TambahRiwayat).Methods("POST")
	api.HandleFunc("/pembayaran/{id}/kwitansi.pdf", pembayaranHandler.Kwitansi).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server berjalan di http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, c.Handler(r)))
}
