package notifikasi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// Webhook mengirim peringatan jatuh tempo ke URL yang dikonfigurasi.
// URL kosong berarti notifikasi dimatikan.
type Webhook struct {
	URL string
}

func New(url string) *Webhook {
	return &Webhook{URL: url}
}

// PeringatanJatuhTempo memberi tahu bahwa sebuah kontrak hampir berakhir
// dan masih menyisakan tagihan. Kegagalan hanya dicatat, tidak menggagalkan
// permintaan yang memicunya.
func (wh *Webhook) PeringatanJatuhTempo(pembayaranID uint, sisaHari, sisaTagihan int64) {
	if wh == nil || wh.URL == "" {
		return
	}

	payload := map[string]interface{}{
		"pesan":         "Peringatan: kontrak hampir berakhir dengan tagihan tersisa",
		"pembayaran_id": pembayaranID,
		"sisa_hari":     sisaHari,
		"sisa_tagihan":  sisaTagihan,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(wh.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Gagal mengirim webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
