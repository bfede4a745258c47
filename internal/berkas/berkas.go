// internal/berkas/berkas.go
package berkas

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Penyimpanan menyimpan berkas unggahan di bawah satu direktori dasar,
// dipisah per bucket (properti, ktp, kwitansi).
type Penyimpanan struct {
	BaseDir string
}

func NewPenyimpanan(baseDir string) *Penyimpanan {
	return &Penyimpanan{BaseDir: baseDir}
}

// Simpan menulis berkas ke <base>/<bucket>/ dan mengembalikan path publiknya.
// Nama berkas memakai stempel waktu plus uuid agar tidak saling menimpa.
func (p *Penyimpanan) Simpan(file *multipart.FileHeader, bucket string) (string, error) {
	dir := filepath.Join(p.BaseDir, bucket)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("gagal membuat direktori unggahan: %w", err)
	}

	nama := fmt.Sprintf("%s-%s%s",
		time.Now().Format("20060102150405"),
		uuid.NewString()[:8],
		filepath.Ext(file.Filename),
	)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, nama))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + bucket + "/" + nama, nil
}
