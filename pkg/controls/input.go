package controls

// Key is a driving key, independent of the host's key codes.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
)

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// RawFrame is everything a host saw between two ticks. Hosts fill it from
// their own input APIs; Translate turns it into events.
type RawFrame struct {
	KeysPressed     []Key
	KeysReleased    []Key
	PointerPressed  []Point
	PointerReleased []Point
	TouchStarted    []Point
	TouchEnded      []Point
	// WheelY is positive when scrolling up (away from the user).
	WheelY float64
}

// Empty reports whether the frame carries no input at all.
func (f RawFrame) Empty() bool {
	return len(f.KeysPressed) == 0 && len(f.KeysReleased) == 0 &&
		len(f.PointerPressed) == 0 && len(f.PointerReleased) == 0 &&
		len(f.TouchStarted) == 0 && len(f.TouchEnded) == 0 &&
		f.WheelY == 0
}

// ButtonHitTester finds the on-screen button under a point.
type ButtonHitTester interface {
	ButtonAt(p Point) Button
}

// Translate converts a raw frame into events in a fixed order: keyboard,
// pointer, touch, wheel. Pointer and touch only count on a button.
func Translate(f RawFrame, hit ButtonHitTester) []Event {
	var events []Event

	for _, k := range f.KeysPressed {
		switch k {
		case KeyForward:
			events = append(events, ForwardKeyDown)
		case KeyBackward:
			events = append(events, BackwardKeyDown)
		}
	}
	for _, k := range f.KeysReleased {
		switch k {
		case KeyForward:
			events = append(events, ForwardKeyUp)
		case KeyBackward:
			events = append(events, BackwardKeyUp)
		}
	}

	if hit != nil {
		events = appendButtonEvents(events, hit, f.PointerPressed, ForwardButtonDown, BackwardButtonDown)
		events = appendButtonEvents(events, hit, f.PointerReleased, ForwardButtonUp, BackwardButtonUp)
		events = appendButtonEvents(events, hit, f.TouchStarted, ForwardTouchStart, BackwardTouchStart)
		events = appendButtonEvents(events, hit, f.TouchEnded, ForwardTouchEnd, BackwardTouchEnd)
	}

	switch {
	case f.WheelY > 0:
		events = append(events, WheelUp)
	case f.WheelY < 0:
		events = append(events, WheelDown)
	}
	return events
}

func appendButtonEvents(events []Event, hit ButtonHitTester, points []Point, forward, backward Event) []Event {
	for _, p := range points {
		switch hit.ButtonAt(p) {
		case ButtonForward:
			events = append(events, forward)
		case ButtonBackward:
			events = append(events, backward)
		}
	}
	return events
}
