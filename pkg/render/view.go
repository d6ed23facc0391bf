package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/sim"
)

// Perspective settings of the chase camera.
const (
	FieldOfView = 75.0
	Near        = 0.1
	Far         = 1000.0
)

// View maps world points to screen pixels for one frame. Build a new one
// whenever the camera moves or the screen is resized.
type View struct {
	eye    mgl64.Vec3
	view   mgl64.Mat4
	proj   mgl64.Mat4
	width  float64
	height float64
}

func NewView(cam sim.Camera, width, height int) View {
	w, h := float64(width), float64(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return View{
		eye:    cam.Eye,
		view:   mgl64.LookAtV(cam.Eye, cam.Target, mgl64.Vec3{0, 1, 0}),
		proj:   mgl64.Perspective(mgl64.DegToRad(FieldOfView), w/h, Near, Far),
		width:  w,
		height: h,
	}
}

// Eye is the camera position in world space.
func (v View) Eye() mgl64.Vec3 {
	return v.eye
}

// ToCamera transforms a world point into camera space, where the camera
// looks down -Z.
func (v View) ToCamera(p mgl64.Vec3) mgl64.Vec3 {
	return v.view.Mul4x1(p.Vec4(1)).Vec3()
}

// ToScreen projects a camera space point in front of the near plane to
// pixels, origin top left.
func (v View) ToScreen(p mgl64.Vec3) mgl64.Vec2 {
	clip := v.proj.Mul4x1(p.Vec4(1))
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * v.width,
		(1 - ndcY) / 2 * v.height,
	}
}

// ClipNear cuts a camera space polygon against the near plane and returns
// the part in front of it. The result is empty when nothing is visible.
func ClipNear(poly []mgl64.Vec3) []mgl64.Vec3 {
	inside := func(p mgl64.Vec3) bool { return p.Z() <= -Near }

	out := make([]mgl64.Vec3, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			t := (-Near - prev.Z()) / (cur.Z() - prev.Z())
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
