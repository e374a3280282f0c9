//go:build hudspritedebug
// +build hudspritedebug

package hudsprite

import (
	"testing"

	"github.com/bodgit/hudsprite/asset"
	"github.com/bodgit/hudsprite/gbi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLoad(t *testing.T) {
	d := &Descriptor{Name: "test", TileWidth: 8, TileHeight: 8, TileCount: 2, Format: gbi.FormatI, Size: gbi.Size8b}
	d.Buf = make([]byte, d.BytesTotal())

	assert.NotPanics(t, func() { Load(new(recorder), d, 1, 1) })
	assert.Panics(t, func() { Load(new(recorder), d, 1, 2) })
	assert.Panics(t, func() { Load(new(recorder), d, -1, 1) })

	d.Buf = d.Buf[:10]
	assert.Panics(t, func() { Load(new(recorder), d, 0, 1) })
}

func TestDebugDraw(t *testing.T) {
	d := &Descriptor{Name: "test", TileWidth: 8, TileHeight: 8, TileCount: 2, Format: gbi.FormatI, Size: gbi.Size8b}

	assert.Panics(t, func() { Draw(new(recorder), d, 0, 0, 0, 0, 8) })
	assert.Panics(t, func() { DrawCropped(new(recorder), d, 0, 0, 0, 8, 4, CropY(2, 2)) })
	assert.NotPanics(t, func() { DrawCropped(new(recorder), d, 0, 0, 0, 8, 5, CropY(2, 2)) })
}

func TestDebugInit(t *testing.T) {
	r := New(nil)
	bank := asset.New()
	require.Nil(t, bank.Set("dpad", make([]byte, 16)))

	assert.Panics(t, func() { _ = r.Init(Config{}, bank, DefaultHeap) })
}
