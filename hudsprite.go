/*
Package hudsprite manages the fixed set of sprite atlases drawn by a console
game's HUD and emits the display list commands that stream their tiles into
the texture cache and draw them as scaled, optionally cropped, rectangles.

A Registry is built once with New and initialised once with Init, strictly
before any call to Load, Draw or DrawCropped. All operations run on the
thread preparing the current frame's display list and none of them lock.
*/
package hudsprite

import (
	"io/ioutil"
	"log"

	"github.com/bodgit/hudsprite/gbi"
)

// Sprite names.
const (
	Dpad                 = "dpad"
	Font                 = "font"
	Icon                 = "icon"
	Icon24               = "icon24"
	ItemTextures         = "item_textures"
	ParameterCounter     = "parameter_counter"
	ParameterAmmoDigit   = "parameter_ammo_digit"
	ParameterClock       = "parameter_clock"
	ParameterNoteButtons = "parameter_note_buttons"
	ParameterSunMoon     = "parameter_sun_moon"
	HudToggle            = "hud_toggle"
	DungeonMapLinkHead   = "dungeon_map_link_head"
)

func sprites() []*Descriptor {
	return []*Descriptor{
		{Name: Dpad, TileWidth: 32, TileHeight: 32, TileCount: 1, Format: gbi.FormatRGBA, Size: gbi.Size32b},
		{Name: Font, TileWidth: 8, TileHeight: 14, TileCount: 95, Format: gbi.FormatIA, Size: gbi.Size8b},
		{Name: Icon, TileWidth: 32, TileHeight: 32, TileCount: 97, Format: gbi.FormatRGBA, Size: gbi.Size32b},
		{Name: Icon24, TileWidth: 24, TileHeight: 24, TileCount: 12, Format: gbi.FormatRGBA, Size: gbi.Size32b},
		// Used for either the file select hash icons or the d-pad icons,
		// depending on the game state
		{Name: ItemTextures, TileWidth: 32, TileHeight: 32, TileCount: 5, Format: gbi.FormatRGBA, Size: gbi.Size32b},
		{Name: ParameterCounter, TileWidth: 8, TileHeight: 16, TileCount: 12, Format: gbi.FormatI, Size: gbi.Size8b},
		{Name: ParameterAmmoDigit, TileWidth: 8, TileHeight: 8, TileCount: 12, Format: gbi.FormatIA, Size: gbi.Size8b},
		{Name: ParameterClock, TileWidth: 16, TileHeight: 16, TileCount: 1, Format: gbi.FormatIA, Size: gbi.Size8b},
		{Name: ParameterNoteButtons, TileWidth: 16, TileHeight: 16, TileCount: 5, Format: gbi.FormatIA, Size: gbi.Size8b},
		{Name: ParameterSunMoon, TileWidth: 24, TileHeight: 24, TileCount: 2, Format: gbi.FormatIA, Size: gbi.Size8b},
		{Name: HudToggle, TileWidth: 16, TileHeight: 16, TileCount: 1, Format: gbi.FormatIA, Size: gbi.Size4b},
		{Name: DungeonMapLinkHead, TileWidth: 16, TileHeight: 16, TileCount: 1, Format: gbi.FormatRGBA, Size: gbi.Size16b},
	}
}

// Registry holds the HUD sprite descriptors and the render state setup list.
type Registry struct {
	logger  *log.Logger
	sprites []*Descriptor
	byName  map[string]*Descriptor
	setup   []gbi.Command
	inits   int
}

// New returns a Registry with every descriptor's buffer unset. A nil logger
// discards output.
func New(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	r := &Registry{
		logger:  logger,
		sprites: sprites(),
		byName:  make(map[string]*Descriptor),
		setup:   setupList(),
	}
	for _, d := range r.sprites {
		r.byName[d.Name] = d
	}

	return r
}

// Lookup returns the descriptor with the given name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns every sprite name in table order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sprites))
	for i, d := range r.sprites {
		names[i] = d.Name
	}
	return names
}

// ItemTextures returns the five tile atlas shared by the file select hash
// icons and the d-pad item icons. The same descriptor is returned for the
// lifetime of the registry.
func (r *Registry) ItemTextures() *Descriptor {
	return r.byName[ItemTextures]
}

// Setup returns the render state display list drawn before any sprite.
func (r *Registry) Setup() []gbi.Command {
	return r.setup
}

// Initialized reports whether Init has completed at least once.
func (r *Registry) Initialized() bool {
	return r.inits > 0
}
