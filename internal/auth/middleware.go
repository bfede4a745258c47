package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID ctxKey = "penggunaID"
	CtxRole   ctxKey = "role"
)

// MiddlewareAutentikasi memeriksa bearer token dan menaruh klaim di context.
func MiddlewareAutentikasi(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token tidak ada", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidasiToken(raw)
		if err != nil {
			http.Error(w, "Token tidak valid", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TolakDemo menolak operasi tulis dari akun demo. Role diambil dari klaim
// token yang sudah diverifikasi server, bukan dari header kiriman klien.
func TolakDemo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		role, _ := r.Context().Value(CtxRole).(string)
		if role == RoleDemo {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "Akses ditolak. Akun demo hanya dapat melihat data, tidak dapat menambah, mengubah, atau menghapus data.",
				"code":  "DEMO_ACCESS_DENIED",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RoleDariContext mengembalikan role pengguna dari context request.
func RoleDariContext(ctx context.Context) string {
	role, _ := ctx.Value(CtxRole).(string)
	return role
}
