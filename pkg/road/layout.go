package road

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const forwardAxis = 2

// DefaultLayout builds the fixed reference scenery for a road one segment
// long, centred on Z = 0. Marking and tree counts follow the segment length
// so the rows always cover the whole road.
func DefaultLayout(segmentLength float64) []*Object {
	b := &layoutBuilder{}
	half := segmentLength / 2

	b.add("sky", RoleSky, GroupStatic, mgl64.Vec3{0, 0, 0},
		Shape{Kind: ShapeSphere, Radius: SkyRadius, Segments: 32, Inside: true}, SkyColor)
	b.add("sun", RoleSun, GroupStatic, mgl64.Vec3{100, 100, -200},
		Shape{Kind: ShapeSphere, Radius: SunRadius, Segments: 32}, SunColor)

	b.add("road", RoleRoad, GroupRecyclable, mgl64.Vec3{0, 0, 0},
		Shape{Kind: ShapePlane, Width: RoadWidth, Depth: segmentLength}, RoadColor)
	b.add("land-left", RoleLand, GroupRecyclable, mgl64.Vec3{-LandOffsetX, LandY, 0},
		Shape{Kind: ShapePlane, Width: LandWidth, Depth: segmentLength}, LandColor)
	b.add("land-right", RoleLand, GroupRecyclable, mgl64.Vec3{LandOffsetX, LandY, 0},
		Shape{Kind: ShapePlane, Width: LandWidth, Depth: segmentLength}, LandColor)

	markings := int(segmentLength / MarkingSpacing)
	for i := 0; i < markings; i++ {
		z := float64(i)*MarkingSpacing - half
		b.add(fmt.Sprintf("marking-%d", i), RoleLaneMarking, GroupRecyclable, mgl64.Vec3{0, MarkingY, z},
			Shape{Kind: ShapePlane, Width: MarkingWidth, Depth: MarkingLength}, MarkingColor)
	}

	trees := int(segmentLength / TreeSpacing)
	for i := 0; i < trees; i++ {
		z := float64(i)*TreeSpacing - half
		b.tree(fmt.Sprintf("tree-left-%d", i), -TreeOffsetX, z)
		b.tree(fmt.Sprintf("tree-right-%d", i), TreeOffsetX, z+TreeStagger)
	}

	b.add("sunlight", RoleDirectionalLight, GroupStatic, mgl64.Vec3{1, 1, 1}, Shape{}, LightColor)
	b.add("ambient", RoleAmbientLight, GroupStatic, mgl64.Vec3{}, Shape{}, AmbientColor)

	return b.objects
}

type layoutBuilder struct {
	objects []*Object
}

func (b *layoutBuilder) add(name string, role Role, group Group, pos mgl64.Vec3, shape Shape, c color.RGBA) {
	b.objects = append(b.objects, &Object{
		ID:       len(b.objects),
		Name:     name,
		Role:     role,
		Group:    group,
		Position: pos,
		Shape:    shape,
		Color:    c,
	})
}

func (b *layoutBuilder) tree(name string, x, z float64) {
	b.add(name+"-top", RoleTreeTop, GroupRecyclable, mgl64.Vec3{x, TreeTopY, z},
		Shape{Kind: ShapeCone, Radius: TreeTopRadius, Height: TreeTopHeight, Segments: TreeTopSegments}, TreeColor)
	b.add(name+"-trunk", RoleTreeTrunk, GroupRecyclable, mgl64.Vec3{x, TrunkY, z},
		Shape{Kind: ShapeCylinder, Radius: TrunkRadius, Height: TrunkHeight, Segments: TrunkSegments}, TrunkColor)
}
