package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config menampung seluruh konfigurasi aplikasi yang dibaca dari environment.
type Config struct {
	App struct {
		Port      int    `envconfig:"PORT" default:"8080"`
		UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"kontrakanku"`
		SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	}

	Notifikasi struct {
		WebhookURL string `envconfig:"WEBHOOK_JATUH_TEMPO_URL"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	}
}

// DSN menyusun string koneksi Postgres dari konfigurasi DB.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("gagal membaca konfigurasi: %w", err)
	}
	return &cfg, nil
}
