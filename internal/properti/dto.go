package properti

import "time"

// ItemDaftar adalah baris daftar unit beserta penyewa yang menempatinya.
type ItemDaftar struct {
	Properti
	NamaPenyewa string     `json:"nama_penyewa"`
	JatuhTempo  *time.Time `json:"jatuh_tempo"`
}
