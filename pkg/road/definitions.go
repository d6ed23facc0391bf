package road

import "image/color"

// Reference segment: the road plane is one segment long and the car may
// drift RecycleDistance from its centre before the scenery is moved.
const (
	DefaultSegmentLength   = 1000.0
	DefaultRecycleDistance = 500.0
)

// Road surface.
const (
	RoadWidth = 10.0
)

// Grass either side of the road.
const (
	LandWidth   = 100.0
	LandOffsetX = 55.0
	LandY       = -0.1
)

// Dashed centre line.
const (
	MarkingWidth   = 0.2
	MarkingLength  = 3.0
	MarkingY       = 0.01
	MarkingSpacing = 5.0
)

// Trees. The right row is staggered forward so the two rows never line up.
const (
	TreeSpacing     = 50.0
	TreeOffsetX     = 20.0
	TreeStagger     = 20.0
	TreeTopRadius   = 2.0
	TreeTopHeight   = 5.0
	TreeTopY        = 2.5
	TreeTopSegments = 8
	TrunkRadius     = 0.5
	TrunkHeight     = 2.0
	TrunkY          = -1.0
	TrunkSegments   = 8
)

// Static decoration.
const (
	SkyRadius = 500.0
	SunRadius = 10.0
)

// Palette taken from the reference scene.
var (
	SkyColor     = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	SunColor     = color.RGBA{0xff, 0xff, 0x00, 0xff}
	RoadColor    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	LandColor    = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	MarkingColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	TreeColor    = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	TrunkColor   = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	LightColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	AmbientColor = color.RGBA{0x40, 0x40, 0x40, 0xff}
)
