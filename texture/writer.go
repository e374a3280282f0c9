package texture

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/bodgit/hudsprite/gbi"
	"github.com/ericpauley/go-quantize/quantize"
)

var errWrongSize = errors.New("texture: image is wrong size")

// Number of intensity levels a 4-bit texel can hold
const levels4b = 16

// Returns the luminance and straight alpha of c
func intensity(c color.Color) (uint8, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	y := (19595*uint32(n.R) + 38470*uint32(n.G) + 7471*uint32(n.B) + 1<<15) >> 16
	return uint8(y), n.A
}

func countIntensities(m image.Image) int {
	seen := make(map[uint8]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i, _ := intensity(m.At(x, y))
			seen[i] = struct{}{}
		}
	}
	return len(seen)
}

// Reduce the image to no more than 16 colors so that each texel keeps a
// distinct intensity once truncated to 4 bits
func reduce(m image.Image) image.Image {
	if countIntensities(m) <= levels4b {
		return m
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, levels4b), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

type encoder struct {
	w      io.Writer
	layout Layout
	buf    []byte
}

// Write the 4-bit texel v at index i
func (e *encoder) putNibble(i int, v byte) {
	if i&1 == 0 {
		e.buf[i>>1] |= lowerNibble(v) << 4
	} else {
		e.buf[i>>1] |= lowerNibble(v)
	}
}

func (e *encoder) putTexel(i int, c color.Color) {
	switch e.layout.Format {
	case gbi.FormatRGBA:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		if e.layout.Size == gbi.Size32b {
			copy(e.buf[i*4:], []byte{n.R, n.G, n.B, n.A})
			return
		}
		v := uint16(n.R>>3)<<11 | uint16(n.G>>3)<<6 | uint16(n.B>>3)<<1 | uint16(n.A>>7)
		binary.BigEndian.PutUint16(e.buf[i*2:], v)
	case gbi.FormatIA:
		y, a := intensity(c)
		switch e.layout.Size {
		case gbi.Size16b:
			e.buf[i*2], e.buf[i*2+1] = y, a
		case gbi.Size8b:
			e.buf[i] = upperNibble(y) | a>>4
		default:
			e.putNibble(i, y>>5<<1|a>>7)
		}
	default:
		y, _ := intensity(c)
		if e.layout.Size == gbi.Size8b {
			e.buf[i] = y
			return
		}
		e.putNibble(i, y>>4)
	}
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()
	e.buf = make([]byte, e.layout.Bytes())
	for y := 0; y < e.layout.Height; y++ {
		for x := 0; x < e.layout.Width; x++ {
			e.putTexel(y*e.layout.Width+x, m.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	_, err := e.w.Write(e.buf)
	return err
}

// Encode writes the Image m to w as a texture with layout l. The image must
// match the dimensions of l. Images with more intensity levels than a 4-bit
// format can hold are quantized first.
func Encode(w io.Writer, m image.Image, l Layout) error {
	if !supported(l) {
		return errUnsupported
	}

	b := m.Bounds()
	if b.Dx() != l.Width || b.Dy() != l.Height {
		return errWrongSize
	}

	if l.Size == gbi.Size4b {
		m = reduce(m)
	}

	e := encoder{w: w, layout: l}

	return e.encode(m)
}
