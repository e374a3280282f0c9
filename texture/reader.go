package texture

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/hudsprite/gbi"
)

var (
	errNotEnough = errors.New("texture: not enough texel data")
	errTooMuch   = errors.New("texture: too much texel data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Expand a 5-bit channel to 8 bits
func expand5(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

// Expand a 3-bit channel to 8 bits
func expand3(v byte) uint8 {
	v &= 0x07
	return v<<5 | v<<2 | v>>1
}

type decoder struct {
	layout Layout
	tmp    []byte
	image  *image.NRGBA
}

// Returns the 4-bit texel at index i
func (d *decoder) nibble(i int) byte {
	b := d.tmp[i>>1]
	if i&1 == 0 {
		return upperNibble(b) >> 4
	}
	return lowerNibble(b)
}

func (d *decoder) texel(i int) color.NRGBA {
	switch d.layout.Format {
	case gbi.FormatRGBA:
		if d.layout.Size == gbi.Size32b {
			p := d.tmp[i*4:]
			return color.NRGBA{p[0], p[1], p[2], p[3]}
		}
		v := binary.BigEndian.Uint16(d.tmp[i*2:])
		var a uint8
		if v&1 != 0 {
			a = 0xff
		}
		return color.NRGBA{expand5(v >> 11), expand5(v >> 6), expand5(v >> 1), a}
	case gbi.FormatIA:
		switch d.layout.Size {
		case gbi.Size16b:
			return gray(d.tmp[i*2], d.tmp[i*2+1])
		case gbi.Size8b:
			b := d.tmp[i]
			return gray(upperNibble(b)|upperNibble(b)>>4, lowerNibble(b)<<4|lowerNibble(b))
		default:
			n := d.nibble(i)
			var a uint8
			if n&1 != 0 {
				a = 0xff
			}
			return gray(expand3(n>>1), a)
		}
	default:
		if d.layout.Size == gbi.Size8b {
			return gray(d.tmp[i], d.tmp[i])
		}
		n := d.nibble(i)
		return gray(n<<4|n, n<<4|n)
	}
}

func gray(i, a uint8) color.NRGBA {
	return color.NRGBA{i, i, i, a}
}

func (d *decoder) decode(r io.Reader) error {
	if !supported(d.layout) {
		return errUnsupported
	}

	d.tmp = make([]byte, d.layout.Bytes())
	if err := readFull(r, d.tmp); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	d.image = image.NewNRGBA(image.Rect(0, 0, d.layout.Width, d.layout.Height))
	for y := 0; y < d.layout.Height; y++ {
		for x := 0; x < d.layout.Width; x++ {
			d.image.SetNRGBA(x, y, d.texel(y*d.layout.Width+x))
		}
	}

	return nil
}

// Decode reads a texture with layout l from r and returns it as an
// image.Image.
func Decode(r io.Reader, l Layout) (image.Image, error) {
	d := decoder{layout: l}
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.image, nil
}
