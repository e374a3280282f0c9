package crc32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tables := []struct {
		name string
		data []byte
		crc  uint32
	}{
		{"empty", nil, 0xffffffff},
		{"check", []byte("123456789"), 0x0376e6e7},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.crc, Checksum(table.data))
		})
	}
}

func TestDigest(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("1234"))
	_, _ = h.Write([]byte("56789"))
	assert.Equal(t, uint32(0x0376e6e7), h.Sum32())
	assert.Equal(t, []byte{0x03, 0x76, 0xe6, 0xe7}, h.Sum(nil))

	h.Reset()
	assert.Equal(t, uint32(0xffffffff), h.Sum32())
}

func TestTable(t *testing.T) {
	assert.Equal(t, uint32(0), table[0])
	assert.Equal(t, uint32(polynomial), table[1])
	assert.Equal(t, uint32(0xb1f740b4), table[0xff])
}
