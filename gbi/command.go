package gbi

// AddressFunc resolves the physical address of the start of a buffer.
type AddressFunc func(b []byte) uint32

// Command is a single display list record.
type Command interface {
	// Encode expands the record into native words.
	Encode(addr AddressFunc) []Gfx
}

// PipeSync waits for the pipeline to drain before changing state.
type PipeSync struct{}

// Encode implements Command.
func (PipeSync) Encode(AddressFunc) []Gfx {
	return []Gfx{{W0: word(opPipeSync, 0)}}
}

// LoadGeometryMode replaces the whole geometry mode with Mode.
type LoadGeometryMode struct {
	Mode uint32
}

// Encode implements Command.
func (c LoadGeometryMode) Encode(AddressFunc) []Gfx {
	return []Gfx{{W0: word(opGeometryMode, 0), W1: c.Mode}}
}

// SetScissor sets the clip rectangle in whole pixels.
type SetScissor struct {
	Mode               int
	Ulx, Uly, Lrx, Lry int
}

// Encode implements Command.
func (c SetScissor) Encode(AddressFunc) []Gfx {
	return []Gfx{{
		W0: word(opSetScissor, field(c.Ulx<<2, 12, 12)|field(c.Uly<<2, 0, 12)),
		W1: field(c.Mode, 24, 8) | field(c.Lrx<<2, 12, 12) | field(c.Lry<<2, 0, 12),
	}}
}

// SetOtherMode replaces both other mode words.
type SetOtherMode struct {
	Hi, Lo uint32
}

// Encode implements Command.
func (c SetOtherMode) Encode(AddressFunc) []Gfx {
	return []Gfx{{W0: word(opSetOtherMode, c.Hi), W1: c.Lo}}
}

// EndDisplayList returns from the current display list.
type EndDisplayList struct{}

// Encode implements Command.
func (EndDisplayList) Encode(AddressFunc) []Gfx {
	return []Gfx{{W0: word(opEndDL, 0)}}
}

// LoadTextureTile loads a rectangle of a texture image into TMEM and
// configures the render tile to sample it.
//
// Texture is the whole source image and Offset the byte offset of the first
// texel to load; the encoded image address is the address of Texture plus
// Offset.
type LoadTextureTile struct {
	Texture []byte
	Offset  int
	Format  Format
	Size    Size

	// Width and Height of the source image in texels, starting at Offset.
	Width, Height int

	// Inclusive texel bounds of the loaded region.
	Uls, Ult, Lrs, Lrt int

	Palette        int
	Cms, Cmt       TexMode
	MaskS, MaskT   int
	ShiftS, ShiftT int
}

func lineWords(width int, siz Size) int {
	var n int
	if siz == Size32b {
		// 32-bit texels are split across the high and low halves of TMEM
		n = width * 2
	} else {
		n = (width*siz.Bits() + 7) >> 3
	}
	return (n + 7) >> 3
}

func (c LoadTextureTile) setTile(tile, line int) Gfx {
	return Gfx{
		W0: word(opSetTile, field(int(c.Format), 21, 3)|field(int(c.Size), 19, 2)|field(line, 9, 9)),
		W1: field(tile, 24, 3) | field(c.Palette, 20, 4) |
			field(int(c.Cmt), 18, 2) | field(c.MaskT, 14, 4) | field(c.ShiftT, 10, 4) |
			field(int(c.Cms), 8, 2) | field(c.MaskS, 4, 4) | field(c.ShiftS, 0, 4),
	}
}

func tileRect(op uint8, tile, uls, ult, lrs, lrt int) Gfx {
	return Gfx{
		W0: word(op, field(uls, 12, 12)|field(ult, 0, 12)),
		W1: field(tile, 24, 3) | field(lrs, 12, 12) | field(lrt, 0, 12),
	}
}

// Encode implements Command.
func (c LoadTextureTile) Encode(addr AddressFunc) []Gfx {
	line := lineWords(c.Lrs-c.Uls+1, c.Size)
	return []Gfx{
		{
			W0: word(opSetTextureImg, field(int(c.Format), 21, 3)|field(int(c.Size), 19, 2)|field(c.Width-1, 0, 12)),
			W1: addr(c.Texture) + uint32(c.Offset),
		},
		c.setTile(LoadTile, line),
		{W0: word(opLoadSync, 0)},
		tileRect(opLoadTile, LoadTile, c.Uls<<2, c.Ult<<2, c.Lrs<<2, c.Lrt<<2),
		{W0: word(opPipeSync, 0)},
		c.setTile(RenderTile, line),
		tileRect(opSetTileSize, RenderTile, c.Uls<<2, c.Ult<<2, c.Lrs<<2, c.Lrt<<2),
	}
}

// TextureRectangle draws an axis aligned rectangle sampled from a tile.
//
// Screen coordinates are in 10.2 fixed point, S and T in 10.5 and the
// per-pixel steps DsDx and DtDy in 5.10.
type TextureRectangle struct {
	Xl, Yl, Xh, Yh int
	Tile           int
	S, T           int
	DsDx, DtDy     int
}

// Encode implements Command.
func (c TextureRectangle) Encode(AddressFunc) []Gfx {
	return []Gfx{
		{
			W0: word(opTexRect, field(c.Xh, 12, 12)|field(c.Yh, 0, 12)),
			W1: field(c.Tile, 24, 3) | field(c.Xl, 12, 12) | field(c.Yl, 0, 12),
		},
		{W0: word(opRDPHalf1, 0), W1: field(c.S, 16, 16) | field(c.T, 0, 16)},
		{W0: word(opRDPHalf2, 0), W1: field(c.DsDx, 16, 16) | field(c.DtDy, 0, 16)},
	}
}
