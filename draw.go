package hudsprite

import "github.com/bodgit/hudsprite/gbi"

// CommandBuffer is the frame's command buffer. Each Append writes one record
// and advances the write cursor.
type CommandBuffer interface {
	Append(c gbi.Command)
}

const (
	// Fractional bits of the rectangle texel steps
	stepFrac = 10
	// Fractional bits of screen coordinates
	screenFrac = 2
	// Fractional bits of texture coordinates
	texelFrac = 5
)

// Load stages tileCount tiles starting at startTile into the texture cache.
// The range must lie within the atlas.
func Load(cb CommandBuffer, d *Descriptor, startTile, tileCount int) {
	if debug {
		assertLoad(d, startTile, tileCount)
	}

	width := d.TileWidth
	height := d.TileHeight * tileCount

	cb.Append(gbi.LoadTextureTile{
		Texture: d.Buf,
		Offset:  startTile * d.BytesPerTile(),
		Format:  d.Format,
		Size:    d.Size,
		Width:   width,
		Height:  height,
		Lrs:     width - 1,
		Lrt:     height - 1,
		Cms:     gbi.Wrap,
		Cmt:     gbi.Wrap,
		MaskS:   gbi.NoMask,
		MaskT:   gbi.NoMask,
		ShiftS:  gbi.NoLOD,
		ShiftT:  gbi.NoLOD,
	})
}

// Draw draws tile tileIndex of the loaded texture scaled to fill the
// rectangle at left, top.
func Draw(cb CommandBuffer, d *Descriptor, tileIndex, left, top, width, height int) {
	DrawCropped(cb, d, tileIndex, left, top, width, height, Crop{})
}

// DrawCropped draws tile tileIndex, less the rows removed by crop, scaled to
// fill the rectangle at left, top. Width must be positive and height greater
// than the cropped rows.
func DrawCropped(cb CommandBuffer, d *Descriptor, tileIndex, left, top, width, height int, crop Crop) {
	if debug {
		assertDraw(d, width, height, crop)
	}

	widthFactor := (1 << stepFrac) * d.TileWidth / width
	heightFactor := (1 << stepFrac) * (d.TileHeight - (crop.Top + crop.Bottom)) / height

	cb.Append(gbi.TextureRectangle{
		Xl:   left << screenFrac,
		Yl:   top << screenFrac,
		Xh:   (left + width) << screenFrac,
		Yh:   (top + height) << screenFrac,
		Tile: gbi.RenderTile,
		S:    0,
		T:    (tileIndex*d.TileHeight + crop.Top) << texelFrac,
		DsDx: widthFactor,
		DtDy: heightFactor,
	})
}
