/*
Package asset implements the bank of named, pre-baked texture regions that
HUD sprites are bound to at startup.

A bank is serialized as a little-endian version word and entry count,
followed by each entry in name order: a 16-bit name length, the name, the
CRC-32 of the data, the data length and the data itself. The whole bank is
zero padded to a multiple of 16 bytes.
*/
package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/bodgit/hudsprite/crc32"
)

const (
	// Extension is the expected file extension used when writing to disk
	Extension = ".bank"

	version   = 0
	alignment = 0x10
)

var (
	// ErrNotFound is returned when a bank has no region with the requested
	// name.
	ErrNotFound = errors.New("asset: region not found")

	errDuplicate    = errors.New("asset: duplicate region")
	errBadName      = errors.New("asset: invalid region name")
	errVersion      = errors.New("asset: unsupported version")
	errChecksum     = errors.New("asset: checksum mismatch")
	errInsufficient = errors.New("asset: insufficient data")
)

// Bank is a set of named byte regions. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Bank struct {
	regions map[string][]byte
}

// New returns an empty bank
func New() *Bank {
	return &Bank{
		regions: make(map[string][]byte),
	}
}

// Length returns the number of regions in the bank
func (b *Bank) Length() int {
	return len(b.regions)
}

// Set stores data under name. The data is referenced, not copied.
func (b *Bank) Set(name string, data []byte) error {
	if name == "" || len(name) > math.MaxUint16 {
		return errBadName
	}
	if _, ok := b.regions[name]; ok {
		return fmt.Errorf("%w: %s", errDuplicate, name)
	}
	b.regions[name] = data
	return nil
}

// Region returns the data stored under name. The returned slice aliases the
// bank's storage.
func (b *Bank) Region(name string) ([]byte, error) {
	data, ok := b.regions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, nil
}

// Names returns the region names in sorted order
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.regions))
	for k := range b.regions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MarshalBinary encodes the bank into binary form and returns the result
func (b *Bank) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)

	if err := binary.Write(buf, binary.LittleEndian, [2]uint32{version, uint32(len(b.regions))}); err != nil {
		return nil, err
	}

	for _, name := range b.Names() {
		data := b.regions[name]

		if err := binary.Write(buf, binary.LittleEndian, uint16(len(name))); err != nil {
			return nil, err
		}
		if _, err := buf.WriteString(name); err != nil {
			return nil, err
		}
		if err := binary.Write(buf, binary.LittleEndian, [2]uint32{crc32.Checksum(data), uint32(len(data))}); err != nil {
			return nil, err
		}
		if _, err := buf.Write(data); err != nil {
			return nil, err
		}
	}

	// Pad to the next multiple of 16 with 0x00's
	if n := buf.Len() % alignment; n != 0 {
		if _, err := buf.Write(make([]byte, alignment-n)); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the bank from binary form. Regions alias b rather
// than copying it.
func (b *Bank) UnmarshalBinary(data []byte) error {
	b.regions = make(map[string][]byte)

	var offset int
	next := func(n int) ([]byte, error) {
		if n < 0 || n > len(data)-offset {
			return nil, errInsufficient
		}
		p := data[offset : offset+n : offset+n]
		offset += n
		return p, nil
	}

	header, err := next(8)
	if err != nil {
		return err
	}
	if binary.LittleEndian.Uint32(header) != version {
		return errVersion
	}
	count := int(binary.LittleEndian.Uint32(header[4:]))

	for i := 0; i < count; i++ {
		p, err := next(2)
		if err != nil {
			return err
		}
		name, err := next(int(binary.LittleEndian.Uint16(p)))
		if err != nil {
			return err
		}
		if p, err = next(8); err != nil {
			return err
		}
		crc, size := binary.LittleEndian.Uint32(p), binary.LittleEndian.Uint32(p[4:])
		region, err := next(int(size))
		if err != nil {
			return err
		}
		if crc32.Checksum(region) != crc {
			return fmt.Errorf("%w: %s", errChecksum, name)
		}
		if err := b.Set(string(name), region); err != nil {
			return err
		}
	}

	return nil
}
