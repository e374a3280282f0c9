package hudsprite

import "fmt"

func assertLoad(d *Descriptor, startTile, tileCount int) {
	if startTile < 0 || tileCount < 0 || startTile+tileCount > d.TileCount {
		panic(fmt.Sprintf("hudsprite: %s: tiles %d+%d out of range [0, %d)", d.Name, startTile, tileCount, d.TileCount))
	}
	assertBuffer(d, d.Buf)
}

func assertDraw(d *Descriptor, width, height int, crop Crop) {
	if width <= 0 {
		panic(fmt.Sprintf("hudsprite: %s: width %d not positive", d.Name, width))
	}
	if height <= crop.Top+crop.Bottom {
		panic(fmt.Sprintf("hudsprite: %s: height %d within crop %d+%d", d.Name, height, crop.Top, crop.Bottom))
	}
}

func assertBuffer(d *Descriptor, buf []byte) {
	if len(buf) != d.BytesTotal() {
		panic(fmt.Sprintf("hudsprite: %s: buffer is %d bytes, want %d", d.Name, len(buf), d.BytesTotal()))
	}
}
