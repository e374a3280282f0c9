package hudsprite

import (
	"github.com/bodgit/hudsprite/gbi"
	"github.com/bodgit/hudsprite/texture"
)

// Descriptor describes a sprite atlas of TileCount tiles, each TileWidth by
// TileHeight texels, stacked vertically in Buf.
//
// Buf is not owned by the descriptor; it references either a static asset
// region or a heap allocation and is assigned once by Registry.Init. Its
// length must equal BytesTotal.
type Descriptor struct {
	Name string
	Buf  []byte

	TileWidth  int
	TileHeight int
	TileCount  int

	Format gbi.Format
	Size   gbi.Size
}

// BytesPerTile returns the number of bytes occupied by a single tile.
func (d *Descriptor) BytesPerTile() int {
	return d.TileWidth * d.TileHeight * d.Size.Bits() >> 3
}

// BytesTotal returns the number of bytes occupied by the whole atlas.
func (d *Descriptor) BytesTotal() int {
	return d.BytesPerTile() * d.TileCount
}

// Layout returns the texture layout of the whole atlas.
func (d *Descriptor) Layout() texture.Layout {
	return texture.Layout{
		Format: d.Format,
		Size:   d.Size,
		Width:  d.TileWidth,
		Height: d.TileHeight * d.TileCount,
	}
}

// Crop insets a tile before it is drawn. Only Top and Bottom are applied.
type Crop struct {
	Top, Bottom int
	Left, Right int
}

// CropY returns a Crop removing top and bottom rows.
func CropY(top, bottom int) Crop {
	return Crop{Top: top, Bottom: bottom}
}
