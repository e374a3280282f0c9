package hudsprite

import (
	"testing"

	"github.com/bodgit/hudsprite/gbi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	cmds []gbi.Command
}

func (r *recorder) Append(c gbi.Command) {
	r.cmds = append(r.cmds, c)
}

func TestBytes(t *testing.T) {
	tables := []struct {
		name    string
		perTile int
		total   int
	}{
		{Dpad, 4096, 4096},
		{Font, 112, 10640},
		{Icon, 4096, 397312},
		{Icon24, 2304, 27648},
		{ItemTextures, 4096, 20480},
		{ParameterCounter, 128, 1536},
		{ParameterAmmoDigit, 64, 768},
		{ParameterClock, 256, 256},
		{ParameterNoteButtons, 256, 1280},
		{ParameterSunMoon, 576, 1152},
		{HudToggle, 128, 128},
		{DungeonMapLinkHead, 512, 512},
	}

	r := New(nil)
	require.Len(t, r.Names(), len(tables))

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			d, ok := r.Lookup(table.name)
			require.True(t, ok)
			assert.Equal(t, table.perTile, d.BytesPerTile())
			assert.Equal(t, d.TileWidth*d.TileHeight*d.Size.Bits()/8, d.BytesPerTile())
			assert.Equal(t, table.total, d.BytesTotal())
			assert.Equal(t, d.BytesPerTile()*d.TileCount, d.BytesTotal())
			assert.Equal(t, d.BytesTotal(), d.Layout().Bytes())
		})
	}
}

func TestLoad(t *testing.T) {
	d := &Descriptor{
		Name:       "test",
		Buf:        make([]byte, 32*32*4*5),
		TileWidth:  32,
		TileHeight: 32,
		TileCount:  5,
		Format:     gbi.FormatRGBA,
		Size:       gbi.Size32b,
	}

	cb := new(recorder)
	Load(cb, d, 2, 3)
	require.Len(t, cb.cmds, 1)

	c, ok := cb.cmds[0].(gbi.LoadTextureTile)
	require.True(t, ok)
	assert.Equal(t, 2*d.BytesPerTile(), c.Offset)
	assert.Same(t, &d.Buf[0], &c.Texture[0])
	assert.Equal(t, gbi.FormatRGBA, c.Format)
	assert.Equal(t, gbi.Size32b, c.Size)
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 96, c.Height)
	assert.Equal(t, 0, c.Uls)
	assert.Equal(t, 0, c.Ult)
	assert.Equal(t, 31, c.Lrs)
	assert.Equal(t, 95, c.Lrt)
	assert.Equal(t, gbi.Wrap, c.Cms)
	assert.Equal(t, gbi.Wrap, c.Cmt)
	assert.Equal(t, gbi.NoMask, c.MaskS)
	assert.Equal(t, gbi.NoMask, c.MaskT)
	assert.Equal(t, gbi.NoLOD, c.ShiftS)
	assert.Equal(t, gbi.NoLOD, c.ShiftT)
}

func TestLoadIntoDisplayList(t *testing.T) {
	r := New(nil)
	d, _ := r.Lookup(HudToggle)
	d.Buf = make([]byte, d.BytesTotal())

	dl := gbi.NewDisplayList(4)
	Load(dl, d, 0, 1)
	Draw(dl, d, 0, 10, 10, 16, 16)
	assert.Equal(t, 2, dl.Len())

	words := dl.Encode(gbi.NewLayout(0x80000000).Address)
	assert.Len(t, words, 7+3)
	assert.Equal(t, uint32(0x80000000), words[0].W1)
}

func TestDrawCropped(t *testing.T) {
	d := &Descriptor{TileWidth: 32, TileHeight: 32, TileCount: 5, Format: gbi.FormatRGBA, Size: gbi.Size32b}

	tables := []struct {
		name          string
		tile          int
		left, top     int
		width, height int
		crop          Crop
		want          gbi.TextureRectangle
	}{
		{
			"double size", 0, 10, 20, 64, 64, Crop{},
			gbi.TextureRectangle{Xl: 40, Yl: 80, Xh: 296, Yh: 336, T: 0, DsDx: 512, DtDy: 512},
		},
		{
			"cropped top", 0, 0, 0, 32, 24, CropY(8, 0),
			gbi.TextureRectangle{Xl: 0, Yl: 0, Xh: 128, Yh: 96, T: 8 << 5, DsDx: 1024, DtDy: 1024},
		},
		{
			"third tile cropped both", 2, 5, 5, 16, 16, CropY(4, 4),
			gbi.TextureRectangle{Xl: 20, Yl: 20, Xh: 84, Yh: 84, T: (2*32 + 4) << 5, DsDx: 2048, DtDy: 1536},
		},
		{
			"truncated", 1, 0, 0, 24, 24, Crop{},
			gbi.TextureRectangle{Xl: 0, Yl: 0, Xh: 96, Yh: 96, T: 32 << 5, DsDx: 1365, DtDy: 1365},
		},
		{
			"left and right ignored", 0, 0, 0, 32, 32, Crop{Left: 4, Right: 4},
			gbi.TextureRectangle{Xl: 0, Yl: 0, Xh: 128, Yh: 128, DsDx: 1024, DtDy: 1024},
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			cb := new(recorder)
			DrawCropped(cb, d, table.tile, table.left, table.top, table.width, table.height, table.crop)
			require.Len(t, cb.cmds, 1)
			assert.Equal(t, table.want, cb.cmds[0])
		})
	}
}

func TestDraw(t *testing.T) {
	d := &Descriptor{TileWidth: 8, TileHeight: 14, TileCount: 95, Format: gbi.FormatIA, Size: gbi.Size8b}

	drawn, cropped := new(recorder), new(recorder)
	Draw(drawn, d, 33, 100, 50, 8, 14)
	DrawCropped(cropped, d, 33, 100, 50, 8, 14, Crop{})

	assert.Equal(t, cropped.cmds, drawn.cmds)
	assert.Equal(t, gbi.TextureRectangle{
		Xl: 400, Yl: 200, Xh: 432, Yh: 256,
		T:    33 * 14 << 5,
		DsDx: 1024, DtDy: 1024,
	}, drawn.cmds[0])
}
