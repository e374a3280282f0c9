package gbi

// Other mode shifts for the high word.
const (
	mdsftAlphaDither = 4
	mdsftRGBDither   = 6
	mdsftCombKey     = 8
	mdsftTextConv    = 9
	mdsftTextFilt    = 12
	mdsftTextLUT     = 14
	mdsftTextLOD     = 16
	mdsftTextDetail  = 17
	mdsftTextPersp   = 19
	mdsftCycleType   = 20
	mdsftPipeline    = 23
)

// Other mode high word values.
const (
	AlphaDitherDisable uint32 = 3 << mdsftAlphaDither
	ColorDitherDisable uint32 = 3 << mdsftRGBDither
	CombKeyNone        uint32 = 0 << mdsftCombKey
	TextConvFilt       uint32 = 6 << mdsftTextConv
	TextFiltBilerp     uint32 = 2 << mdsftTextFilt
	TextLUTNone        uint32 = 0 << mdsftTextLUT
	TextLODTile        uint32 = 0 << mdsftTextLOD
	TextDetailClamp    uint32 = 0 << mdsftTextDetail
	TextPerspNone      uint32 = 0 << mdsftTextPersp
	CycleOne           uint32 = 0 << mdsftCycleType
	PipelineNPrimitive uint32 = 0 << mdsftPipeline
)

// Other mode low word values.
const (
	AlphaCompareNone uint32 = 0
	ZSourcePrim      uint32 = 1 << 2
)

// Render mode flags.
const (
	rmImRd       = 0x40
	rmCvgDstFull = 0x200
	rmZModeOpa   = 0
	rmForceBl    = 0x4000
)

// Blender inputs.
const (
	blClrIn  = 0
	blClrMem = 1
	blAIn    = 0
	bl1MA    = 0
)

func blendCycle1(m1a, m1b, m2a, m2b uint32) uint32 {
	return m1a<<30 | m1b<<26 | m2a<<22 | m2b<<18
}

func blendCycle2(m1a, m1b, m2a, m2b uint32) uint32 {
	return m1a<<28 | m1b<<24 | m2a<<20 | m2b<<16
}

// Translucent surface render modes for each blender cycle.
var (
	RenderXluSurf  = rmImRd | rmCvgDstFull | rmForceBl | rmZModeOpa | blendCycle1(blClrIn, blAIn, blClrMem, bl1MA)
	RenderXluSurf2 = rmImRd | rmCvgDstFull | rmForceBl | rmZModeOpa | blendCycle2(blClrIn, blAIn, blClrMem, bl1MA)
)
