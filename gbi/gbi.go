/*
Package gbi implements the subset of the F3DEX2 graphics binary interface
needed to stage HUD textures and draw them as textured rectangles.

Commands are appended to a DisplayList as records and only expanded into
native 64-bit words when the list is encoded. Each record maps to exactly one
slot in the list, regardless of how many words it expands to.
*/
package gbi

import "fmt"

// Format is the texel format of a texture image.
type Format uint8

// Texel formats understood by the rasterizer.
const (
	FormatRGBA Format = iota
	FormatYUV
	FormatCI
	FormatIA
	FormatI
)

var formatNames = [...]string{"RGBA", "YUV", "CI", "IA", "I"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Size is the size class of a single texel.
type Size uint8

// Texel size classes.
const (
	Size4b Size = iota
	Size8b
	Size16b
	Size32b
)

// Bits returns the number of bits per texel.
func (s Size) Bits() int {
	return 4 << s
}

func (s Size) String() string {
	return fmt.Sprintf("%db", s.Bits())
}

// TexMode selects how texture coordinates outside a tile are treated.
type TexMode uint8

// Texture coordinate modes.
const (
	Wrap   TexMode = 0
	Mirror TexMode = 1
	Clamp  TexMode = 2
)

const (
	// NoMask disables coordinate masking.
	NoMask = 0
	// NoLOD disables level-of-detail shifting.
	NoLOD = 0

	// LoadTile is the tile descriptor used for loads into TMEM.
	LoadTile = 7
	// RenderTile is the tile descriptor sampled when drawing.
	RenderTile = 0

	// ScissorNonInterlace draws every scanline.
	ScissorNonInterlace = 0
)

// Opcodes used by this package.
const (
	opGeometryMode  = 0xd9
	opEndDL         = 0xdf
	opRDPHalf1      = 0xe1
	opTexRect       = 0xe4
	opLoadSync      = 0xe6
	opPipeSync      = 0xe7
	opSetScissor    = 0xed
	opSetOtherMode  = 0xef
	opRDPHalf2      = 0xf1
	opSetTileSize   = 0xf2
	opLoadTile      = 0xf4
	opSetTile       = 0xf5
	opSetTextureImg = 0xfd
)

// Gfx is a single native display list word pair.
type Gfx struct {
	W0, W1 uint32
}

func (g Gfx) String() string {
	return fmt.Sprintf("%08X %08X", g.W0, g.W1)
}

// Opcode returns the command byte of the word pair.
func (g Gfx) Opcode() uint8 {
	return uint8(g.W0 >> 24)
}

func word(op uint8, lo uint32) uint32 {
	return uint32(op)<<24 | lo&0xffffff
}

func field(v, shift, width int) uint32 {
	return uint32(v) & (1<<uint(width) - 1) << uint(shift)
}
