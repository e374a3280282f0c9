/*
Package crc32 implements the CRC-32/MPEG-2 checksum guarding asset regions.

This is the non-reflected form of the CRC-32 polynomial: bits are shifted in
most significant first, the register starts at all ones and the result is not
inverted.
*/
package crc32

import "hash"

const (
	// Size of a CRC-32 checksum in bytes.
	Size = 4

	polynomial = 0x04c11db7
	initial    = 0xffffffff
)

var table [256]uint32

func init() {
	for i := range table {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			c = c<<1 ^ -(c>>31)&polynomial
		}
		table[i] = c
	}
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crc<<8 ^ table[byte(crc>>24)^b]
	}
	return crc
}

// Checksum returns the CRC-32/MPEG-2 checksum of data.
func Checksum(data []byte) uint32 {
	return Update(initial, data)
}

type digest uint32

// New returns a hash.Hash32 computing the checksum incrementally. Its Sum
// method appends the value in big-endian byte order.
func New() hash.Hash32 {
	d := digest(initial)
	return &d
}

func (d *digest) Write(p []byte) (int, error) {
	*d = digest(Update(uint32(*d), p))
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	s := uint32(*d)
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) Reset()         { *d = initial }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Sum32() uint32  { return uint32(*d) }
