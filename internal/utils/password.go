package utils

import "golang.org/x/crypto/bcrypt"

// HashSandi mengembalikan hash bcrypt dari sandi dalam bentuk teks.
func HashSandi(sandi string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(sandi), bcrypt.DefaultCost)
	return string(hash), err
}

// CekSandi membandingkan hash bcrypt dengan sandi teks, true jika cocok.
func CekSandi(hash, sandi string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(sandi))
	return err == nil
}
