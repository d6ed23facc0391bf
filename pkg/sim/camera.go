package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/vehicle"
)

// Chase camera placement relative to the car.
const (
	CameraHeight = 2.0
	CameraBehind = 5.0
)

// Camera is a look-at pair in world space.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
}

// FollowCamera sits above the road centre line, behind the car, looking at it.
func FollowCamera(v vehicle.Vehicle) Camera {
	eye := mgl64.Vec3{0, CameraHeight, v.Forward() - CameraBehind}
	return Camera{Eye: eye, Target: v.Position}
}
