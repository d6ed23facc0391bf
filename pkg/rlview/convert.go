package rlview

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/golangdaddy/cruise/pkg/sim"
)

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func rgba(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// camera3D mirrors the chase camera with the shared field of view.
func camera3D(cam sim.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(cam.Eye),
		Target:     vec3(cam.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       render.FieldOfView,
		Projection: rl.CameraPerspective,
	}
}

// cylinderBase moves a centred position to the bottom of a shape of the
// given height; raylib draws cylinders upward from their base.
func cylinderBase(center mgl64.Vec3, height float64) rl.Vector3 {
	return vec3(center.Sub(mgl64.Vec3{0, height / 2, 0}))
}
