package properti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []string{StatusKosong, StatusTerisi, StatusPerbaikan} {
		assert.True(t, StatusValid(s), s)
	}
	assert.False(t, StatusValid("disewakan"))
	assert.False(t, StatusValid(""))
	// status peka huruf besar-kecil
	assert.False(t, StatusValid("Kosong"))
}
