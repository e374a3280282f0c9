package hudsprite

import (
	"fmt"

	"github.com/bodgit/hudsprite/gbi"
	"github.com/bodgit/hudsprite/texture"
)

// Config holds the process-wide settings read by Init.
type Config struct {
	// Widescreen widens the scissor in the setup list to cover a 16:9
	// display.
	Widescreen bool
}

// Heap allocates zeroed buffers that are never freed.
type Heap interface {
	Alloc(n int) []byte
}

// HeapFunc adapts a function to the Heap interface.
type HeapFunc func(n int) []byte

// Alloc calls f(n).
func (f HeapFunc) Alloc(n int) []byte {
	return f(n)
}

// DefaultHeap allocates from the Go heap.
var DefaultHeap Heap = HeapFunc(func(n int) []byte {
	return make([]byte, n)
})

// Assets provides the pre-baked texture regions sprites are bound to.
type Assets interface {
	Region(name string) ([]byte, error)
}

// Source is where a descriptor's buffer comes from.
type Source int

// Buffer sources.
const (
	// Unbound buffers are populated by other code.
	Unbound Source = iota
	// StaticReference buffers alias an asset region in the expected layout.
	StaticReference
	// HeapAllocated buffers are allocated at startup. If an asset is named
	// it holds packed 4-bit intensity texels which are expanded into the
	// buffer.
	HeapAllocated
)

func (s Source) String() string {
	switch s {
	case StaticReference:
		return "static"
	case HeapAllocated:
		return "heap"
	default:
		return "unbound"
	}
}

type binding struct {
	sprite string
	source Source
	asset  string
}

var bindings = []binding{
	{Dpad, StaticReference, "dpad"},
	{ParameterCounter, StaticReference, "parameter_counter"},
	{ParameterAmmoDigit, StaticReference, "parameter_ammo_digit"},
	{ParameterClock, StaticReference, "parameter_clock"},
	{ParameterNoteButtons, StaticReference, "parameter_note_buttons"},
	{ParameterSunMoon, StaticReference, "parameter_sun_moon"},
	{HudToggle, StaticReference, "hud_toggle"},
	{DungeonMapLinkHead, StaticReference, "dungeon_map_link_head"},
	{ItemTextures, HeapAllocated, ""},
	{Font, HeapAllocated, "font"},
}

// Source returns where the named sprite's buffer comes from.
func (r *Registry) Source(name string) Source {
	for _, b := range bindings {
		if b.sprite == name {
			return b.source
		}
	}
	return Unbound
}

// AssetLayout returns the layout the named asset region must have for Init
// to bind it, or false if no sprite uses the asset.
func (r *Registry) AssetLayout(asset string) (texture.Layout, bool) {
	for _, b := range bindings {
		if b.asset != asset || asset == "" {
			continue
		}
		l := r.byName[b.sprite].Layout()
		if b.source == HeapAllocated {
			l.Format, l.Size = gbi.FormatI, gbi.Size4b
		}
		return l, true
	}
	return texture.Layout{}, false
}

// Init binds every sprite to its buffer and configures the setup list. It
// must complete before the first Load or Draw.
//
// Every asset region is resolved before anything is modified, so an error
// leaves the registry as it was.
//
// Init is meant to run once. Running it again allocates fresh heap buffers
// without releasing the previous ones.
func (r *Registry) Init(cfg Config, assets Assets, heap Heap) error {
	regions := make([][]byte, len(bindings))
	for i, b := range bindings {
		if b.asset == "" {
			continue
		}
		buf, err := assets.Region(b.asset)
		if err != nil {
			return fmt.Errorf("hudsprite: binding %s: %w", b.sprite, err)
		}
		if debug && b.source == StaticReference {
			assertBuffer(r.byName[b.sprite], buf)
		}
		regions[i] = buf
	}

	if r.inits > 0 {
		r.logger.Printf("Reinitialising after %d run(s), previous heap buffers are abandoned\n", r.inits)
	}

	if cfg.Widescreen {
		r.setup[scissorSlot] = scissor(ScreenWidth + widescreenExtra)
	}

	for i, b := range bindings {
		d := r.byName[b.sprite]

		switch b.source {
		case StaticReference:
			d.Buf = regions[i]
		case HeapAllocated:
			d.Buf = heap.Alloc(d.BytesTotal())
			if regions[i] != nil {
				texture.ExpandI4ToIA8(d.Buf, regions[i])
			}
		default:
			continue
		}

		r.logger.Printf("Bound %s to %s buffer of %d bytes\n", d.Name, b.source, len(d.Buf))
	}

	r.inits++

	return nil
}
