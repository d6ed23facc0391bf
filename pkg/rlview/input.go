package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golangdaddy/cruise/pkg/controls"
)

// poller reads raylib's input state into a RawFrame. raylib reports touch
// points rather than events, so starts and ends are diffed per frame.
type poller struct {
	touches map[int32]controls.Point
}

func newPoller() *poller {
	return &poller{touches: make(map[int32]controls.Point)}
}

func (p *poller) Poll() controls.RawFrame {
	var f controls.RawFrame

	if rl.IsKeyPressed(rl.KeyUp) {
		f.KeysPressed = append(f.KeysPressed, controls.KeyForward)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		f.KeysPressed = append(f.KeysPressed, controls.KeyBackward)
	}
	if rl.IsKeyReleased(rl.KeyUp) {
		f.KeysReleased = append(f.KeysReleased, controls.KeyForward)
	}
	if rl.IsKeyReleased(rl.KeyDown) {
		f.KeysReleased = append(f.KeysReleased, controls.KeyBackward)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		f.PointerPressed = append(f.PointerPressed, mouse())
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		f.PointerReleased = append(f.PointerReleased, mouse())
	}

	seen := make(map[int32]bool, len(p.touches))
	for i := int32(0); i < rl.GetTouchPointCount(); i++ {
		id := rl.GetTouchPointId(i)
		seen[id] = true
		if _, ok := p.touches[id]; ok {
			continue
		}
		pos := rl.GetTouchPosition(i)
		pt := controls.Point{X: float64(pos.X), Y: float64(pos.Y)}
		p.touches[id] = pt
		f.TouchStarted = append(f.TouchStarted, pt)
	}
	for id, pt := range p.touches {
		if !seen[id] {
			delete(p.touches, id)
			f.TouchEnded = append(f.TouchEnded, pt)
		}
	}

	f.WheelY = float64(rl.GetMouseWheelMove())
	return f
}

// Held returns the button under a pressed mouse or an active touch.
func (p *poller) Held(hit controls.ButtonHitTester) controls.Button {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if b := hit.ButtonAt(mouse()); b != controls.ButtonNone {
			return b
		}
	}
	for _, pt := range p.touches {
		if b := hit.ButtonAt(pt); b != controls.ButtonNone {
			return b
		}
	}
	return controls.ButtonNone
}

func mouse() controls.Point {
	pos := rl.GetMousePosition()
	return controls.Point{X: float64(pos.X), Y: float64(pos.Y)}
}
