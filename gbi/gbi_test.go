package gbi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeBits(t *testing.T) {
	tables := []struct {
		size Size
		bits int
	}{
		{Size4b, 4},
		{Size8b, 8},
		{Size16b, 16},
		{Size32b, 32},
	}

	for _, table := range tables {
		t.Run(table.size.String(), func(t *testing.T) {
			assert.Equal(t, table.bits, table.size.Bits())
		})
	}
}

func TestTextureRectangle(t *testing.T) {
	c := TextureRectangle{
		Xl: 10 << 2, Yl: 20 << 2,
		Xh: 74 << 2, Yh: 84 << 2,
		S: 0, T: 32 << 5,
		DsDx: 512, DtDy: 512,
	}

	assert.Equal(t, []Gfx{
		{0xe4128150, 0x00028050},
		{0xe1000000, 0x00000400},
		{0xf1000000, 0x02000200},
	}, c.Encode(nil))
}

func TestLoadTextureTile(t *testing.T) {
	buf := make([]byte, 32*32*4*2)
	l := NewLayout(0x80100000)

	c := LoadTextureTile{
		Texture: buf,
		Offset:  4096,
		Format:  FormatRGBA,
		Size:    Size32b,
		Width:   32,
		Height:  64,
		Lrs:     31,
		Lrt:     63,
		Cms:     Wrap,
		Cmt:     Wrap,
	}

	assert.Equal(t, []Gfx{
		{0xfd18001f, 0x80101000},
		{0xf5181000, 0x07000000},
		{0xe6000000, 0x00000000},
		{0xf4000000, 0x0707c0fc},
		{0xe7000000, 0x00000000},
		{0xf5181000, 0x00000000},
		{0xf2000000, 0x0007c0fc},
	}, c.Encode(l.Address))
}

func TestLineWords(t *testing.T) {
	tables := []struct {
		name  string
		width int
		size  Size
		words int
	}{
		{"IA4 16 wide", 16, Size4b, 1},
		{"IA8 8 wide", 8, Size8b, 1},
		{"IA8 24 wide", 24, Size8b, 3},
		{"RGBA16 16 wide", 16, Size16b, 4},
		{"RGBA32 32 wide", 32, Size32b, 8},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.words, lineWords(table.width, table.size))
		})
	}
}

func TestSetScissor(t *testing.T) {
	tables := []struct {
		name string
		c    SetScissor
		want Gfx
	}{
		{"standard", SetScissor{ScissorNonInterlace, 0, 0, 320, 240}, Gfx{0xed000000, 0x005003c0}},
		{"widescreen", SetScissor{ScissorNonInterlace, 0, 0, 424, 240}, Gfx{0xed000000, 0x006a03c0}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, []Gfx{table.want}, table.c.Encode(nil))
		})
	}
}

func TestRenderMode(t *testing.T) {
	assert.Equal(t, uint32(0x00404240), RenderXluSurf)
	assert.Equal(t, uint32(0x00104240), RenderXluSurf2)
}

func TestOtherMode(t *testing.T) {
	hi := AlphaDitherDisable | ColorDitherDisable | CombKeyNone | TextConvFilt |
		TextDetailClamp | TextPerspNone | TextLODTile | TextLUTNone |
		PipelineNPrimitive | CycleOne | TextFiltBilerp
	lo := AlphaCompareNone | ZSourcePrim | RenderXluSurf | RenderXluSurf2

	assert.Equal(t, []Gfx{{0xef002cf0, 0x00504244}}, SetOtherMode{hi, lo}.Encode(nil))
}

func TestDisplayList(t *testing.T) {
	dl := NewDisplayList(2)
	assert.Equal(t, 0, dl.Len())
	assert.Equal(t, 2, dl.Cap())

	dl.Append(PipeSync{})
	dl.Append(EndDisplayList{})
	assert.Equal(t, 2, dl.Len())

	assert.PanicsWithValue(t, ErrOverflow, func() {
		dl.Append(PipeSync{})
	})

	words := dl.Encode(nil)
	require.Len(t, words, 2)
	assert.Equal(t, []byte{
		0xe7, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xdf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, Marshal(words))

	dl.Reset()
	assert.Equal(t, 0, dl.Len())
	assert.Equal(t, 2, dl.Cap())
}

func TestLayout(t *testing.T) {
	l := NewLayout(0x1001)

	a := make([]byte, 10)
	b := make([]byte, 4)

	assert.Equal(t, uint32(0x1008), l.Place(a))
	assert.Equal(t, uint32(0x1018), l.Place(b))
	assert.Equal(t, uint32(0x1008), l.Address(a))
	assert.Equal(t, uint32(0), l.Place(nil))
}
