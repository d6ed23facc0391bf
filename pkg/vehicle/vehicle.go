package vehicle

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ForwardAxis is the index of the world axis the vehicle drives along.
const ForwardAxis = 2

// Body of the car: a box resting on the road.
const (
	BodyWidth  = 1.0
	BodyHeight = 0.5
	BodyLength = 2.0
)

var (
	// StartPosition puts the car's box on the road surface at the origin.
	StartPosition = mgl64.Vec3{0, BodyHeight / 2, 0}
	BodyColor     = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Vehicle is the player's car. Only the forward component of Position is
// changed by motion; X and Y stay where the scene put them.
type Vehicle struct {
	Position mgl64.Vec3
	Velocity float64 // current signed velocity, units per tick
	Target   float64 // velocity requested by input
}

// New returns a stationary vehicle at the given position.
func New(position mgl64.Vec3) Vehicle {
	return Vehicle{Position: position}
}

// Forward returns the position along the forward axis.
func (v *Vehicle) Forward() float64 {
	return v.Position[ForwardAxis]
}

// SetTarget is the only thing input handlers are allowed to write.
func (v *Vehicle) SetTarget(target float64) {
	v.Target = target
}

// Moving reports whether the vehicle has any velocity left.
func (v *Vehicle) Moving() bool {
	return v.Velocity != 0
}
