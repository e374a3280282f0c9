package hudsprite

import "github.com/bodgit/hudsprite/gbi"

// Screen dimensions in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 240

	// Extra width of the widescreen scissor
	widescreenExtra = 104
)

// Position of the scissor in the setup list
const scissorSlot = 2

func scissor(width int) gbi.Command {
	return gbi.SetScissor{
		Mode: gbi.ScissorNonInterlace,
		Lrx:  width,
		Lry:  ScreenHeight,
	}
}

func setupList() []gbi.Command {
	return []gbi.Command{
		gbi.PipeSync{},
		gbi.LoadGeometryMode{Mode: 0},
		scissor(ScreenWidth),
		gbi.SetOtherMode{
			Hi: gbi.AlphaDitherDisable | gbi.ColorDitherDisable |
				gbi.CombKeyNone | gbi.TextConvFilt |
				gbi.TextDetailClamp | gbi.TextPerspNone |
				gbi.TextLODTile | gbi.TextLUTNone |
				gbi.PipelineNPrimitive | gbi.CycleOne |
				gbi.TextFiltBilerp,
			Lo: gbi.AlphaCompareNone | gbi.ZSourcePrim |
				gbi.RenderXluSurf | gbi.RenderXluSurf2,
		},
		gbi.EndDisplayList{},
	}
}
