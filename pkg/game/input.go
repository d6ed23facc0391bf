package game

import (
	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ForwardKeys and BackwardKeys are the driving keys.
var (
	ForwardKeys  = []ebiten.Key{ebiten.KeyArrowUp}
	BackwardKeys = []ebiten.Key{ebiten.KeyArrowDown}
)

// inputPoller reads ebiten's per-tick input state into a RawFrame.
type inputPoller struct {
	touchIDs []ebiten.TouchID
	// A touch ends on the button it started on, wherever the finger lifts.
	touchStarts map[ebiten.TouchID]controls.Point
}

func newInputPoller() *inputPoller {
	return &inputPoller{touchStarts: make(map[ebiten.TouchID]controls.Point)}
}

func (p *inputPoller) Poll() controls.RawFrame {
	var f controls.RawFrame

	f.KeysPressed = appendKeys(f.KeysPressed, inpututil.IsKeyJustPressed)
	f.KeysReleased = appendKeys(f.KeysReleased, inpututil.IsKeyJustReleased)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.PointerPressed = append(f.PointerPressed, cursor())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.PointerReleased = append(f.PointerReleased, cursor())
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pt := controls.Point{X: float64(x), Y: float64(y)}
		p.touchStarts[id] = pt
		f.TouchStarted = append(f.TouchStarted, pt)
	}
	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		pt, ok := p.touchStarts[id]
		if !ok {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			pt = controls.Point{X: float64(x), Y: float64(y)}
		}
		delete(p.touchStarts, id)
		f.TouchEnded = append(f.TouchEnded, pt)
	}

	_, f.WheelY = ebiten.Wheel()
	return f
}

// Held returns the button currently pressed by the mouse or a touch.
func (p *inputPoller) Held(hit controls.ButtonHitTester) controls.Button {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if b := hit.ButtonAt(cursor()); b != controls.ButtonNone {
			return b
		}
	}
	for _, pt := range p.touchStarts {
		if b := hit.ButtonAt(pt); b != controls.ButtonNone {
			return b
		}
	}
	return controls.ButtonNone
}

func appendKeys(keys []controls.Key, check func(ebiten.Key) bool) []controls.Key {
	for _, k := range ForwardKeys {
		if check(k) {
			keys = append(keys, controls.KeyForward)
			break
		}
	}
	for _, k := range BackwardKeys {
		if check(k) {
			keys = append(keys, controls.KeyBackward)
			break
		}
	}
	return keys
}

func cursor() controls.Point {
	x, y := ebiten.CursorPosition()
	return controls.Point{X: float64(x), Y: float64(y)}
}
