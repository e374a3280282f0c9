/*
Package texture implements encoders and decoders for the texel formats used
by HUD sprite atlases.

A texture is stored row-major with no padding between rows. Formats smaller
than a byte pack two texels per byte, the leftmost texel in the upper nibble.
Sixteen bit texels are big-endian. The supported formats are RGBA 16 and 32
bit, IA 4, 8 and 16 bit, and I 4 and 8 bit.
*/
package texture

import (
	"errors"

	"github.com/bodgit/hudsprite/gbi"
)

// Layout describes the format and dimensions of a texture.
type Layout struct {
	Format gbi.Format
	Size   gbi.Size
	Width  int
	Height int
}

// Bytes returns the number of bytes a texture with this layout occupies.
func (l Layout) Bytes() int {
	return (l.Width*l.Height*l.Size.Bits() + 7) >> 3
}

var errUnsupported = errors.New("texture: unsupported format")

func supported(l Layout) bool {
	switch l.Format {
	case gbi.FormatRGBA:
		return l.Size == gbi.Size16b || l.Size == gbi.Size32b
	case gbi.FormatIA:
		return l.Size != gbi.Size32b
	case gbi.FormatI:
		return l.Size == gbi.Size4b || l.Size == gbi.Size8b
	}
	return false
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// ExpandI4ToIA8 transcodes packed 4-bit intensity texels in src into fully
// opaque 8-bit intensity+alpha texels in dst. Each source byte produces two
// output bytes so len(dst)/2 bytes of src are consumed. It returns the number
// of bytes written.
func ExpandI4ToIA8(dst, src []byte) int {
	n := len(dst) >> 1
	for i, b := range src[:n] {
		dst[i<<1] = upperNibble(b) | 0x0f
		dst[i<<1+1] = lowerNibble(b)<<4 | 0x0f
	}
	return n << 1
}
