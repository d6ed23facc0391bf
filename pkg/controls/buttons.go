package controls

// Button identifies an on-screen control.
type Button int

const (
	ButtonNone Button = iota
	ButtonForward
	ButtonBackward
)

func (b Button) String() string {
	switch b {
	case ButtonForward:
		return "forward"
	case ButtonBackward:
		return "backward"
	}
	return "none"
}

// On-screen button geometry in pixels. Both buttons sit centred at the
// bottom of the screen, forward above backward.
const (
	ButtonWidth          = 64.0
	ButtonHeight         = 36.0
	ButtonBackwardMargin = 20.0
	ButtonGap            = 6.0
)

// Rect is an axis aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains includes the top and left edges and excludes the bottom and right.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ButtonLayout holds the button rectangles for one screen size.
type ButtonLayout struct {
	Forward  Rect
	Backward Rect
}

// LayoutButtons places the buttons for a screen of the given size. Call it
// again after a resize.
func LayoutButtons(screenWidth, screenHeight int) ButtonLayout {
	x := float64(screenWidth)/2 - ButtonWidth/2
	backwardY := float64(screenHeight) - ButtonBackwardMargin - ButtonHeight
	forwardY := backwardY - ButtonGap - ButtonHeight
	return ButtonLayout{
		Forward:  Rect{X: x, Y: forwardY, W: ButtonWidth, H: ButtonHeight},
		Backward: Rect{X: x, Y: backwardY, W: ButtonWidth, H: ButtonHeight},
	}
}

// ButtonAt implements ButtonHitTester.
func (l ButtonLayout) ButtonAt(p Point) Button {
	switch {
	case l.Forward.Contains(p):
		return ButtonForward
	case l.Backward.Contains(p):
		return ButtonBackward
	}
	return ButtonNone
}
