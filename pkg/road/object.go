package road

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Role says what a scenery object is in the scene.
type Role int

const (
	RoleRoad Role = iota
	RoleLand
	RoleLaneMarking
	RoleTreeTop
	RoleTreeTrunk
	RoleSky
	RoleSun
	RoleDirectionalLight
	RoleAmbientLight
)

var roleNames = map[Role]string{
	RoleRoad:             "road",
	RoleLand:             "land",
	RoleLaneMarking:      "lane-marking",
	RoleTreeTop:          "tree-top",
	RoleTreeTrunk:        "tree-trunk",
	RoleSky:              "sky",
	RoleSun:              "sun",
	RoleDirectionalLight: "directional-light",
	RoleAmbientLight:     "ambient-light",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Unlit reports whether the role is drawn in its flat colour, ignoring lights.
func (r Role) Unlit() bool {
	switch r {
	case RoleSky, RoleSun, RoleLaneMarking:
		return true
	}
	return false
}

// Group decides whether an object follows the road when it is recycled.
type Group int

const (
	GroupStatic Group = iota
	GroupRecyclable
)

func (g Group) String() string {
	if g == GroupRecyclable {
		return "recyclable"
	}
	return "static"
}

// ShapeKind is the primitive a renderer should draw for an object.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapePlane
	ShapeBox
	ShapeCone
	ShapeCylinder
	ShapeSphere
)

// Shape is centred on the object's position. Planes lie flat on XZ with
// Width along X and Depth along Z.
type Shape struct {
	Kind     ShapeKind
	Width    float64
	Height   float64
	Depth    float64
	Radius   float64
	Segments int
	// Inside marks shapes seen from within, like the sky dome.
	Inside bool
}

// Object is one piece of scenery.
type Object struct {
	ID       int
	Name     string
	Role     Role
	Group    Group
	Position mgl64.Vec3
	Shape    Shape
	Color    color.RGBA
}

// Recyclable reports whether the object is translated by recycle events.
func (o *Object) Recyclable() bool {
	return o.Group == GroupRecyclable
}

// Forward returns the object's position along the driving axis.
func (o *Object) Forward() float64 {
	return o.Position[forwardAxis]
}

func (o *Object) shift(distance float64) {
	o.Position[forwardAxis] += distance
}
