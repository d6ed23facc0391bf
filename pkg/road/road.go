package road

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveBounds    = errors.New("segment length and recycle distance must be positive")
	ErrWindowExceedsSegment = errors.New("window is longer than a segment")
	ErrSegmentExceedsWindow = errors.New("segment is longer than the window")
	ErrNoAnchor             = errors.New("layout has no recyclable road to anchor the window")
	ErrMultipleAnchors      = errors.New("layout has more than one recyclable road")
)

// Bounds sizes the window the car may roam in before scenery is recycled.
// The window is [anchor-RecycleDistance, anchor+RecycleDistance].
type Bounds struct {
	SegmentLength   float64 `mapstructure:"segmentLength"`
	RecycleDistance float64 `mapstructure:"recycleDistance"`
}

// DefaultBounds returns the reference window: a 1000 unit segment with a
// 500 unit half window.
func DefaultBounds() Bounds {
	return Bounds{
		SegmentLength:   DefaultSegmentLength,
		RecycleDistance: DefaultRecycleDistance,
	}
}

// Window is the full width of the valid window.
func (b Bounds) Window() float64 {
	return 2 * b.RecycleDistance
}

// Validate checks that one shift always lands the car back inside the
// window. A window longer than the segment could need two shifts in one
// tick; a segment longer than the window overshoots and shifts straight back.
func (b Bounds) Validate() error {
	if !(b.SegmentLength > 0) || !(b.RecycleDistance > 0) {
		return fmt.Errorf("%w: segment %v, recycle distance %v", ErrNonPositiveBounds, b.SegmentLength, b.RecycleDistance)
	}
	if b.Window() > b.SegmentLength {
		return fmt.Errorf("%w: window %v, segment %v", ErrWindowExceedsSegment, b.Window(), b.SegmentLength)
	}
	if b.SegmentLength > b.Window() {
		return fmt.Errorf("%w: segment %v, window %v", ErrSegmentExceedsWindow, b.SegmentLength, b.Window())
	}
	return nil
}

// Shift is the outcome of a recycle check.
type Shift int

const (
	ShiftNone Shift = iota
	ShiftForward
	ShiftBackward
)

func (s Shift) String() string {
	switch s {
	case ShiftForward:
		return "forward"
	case ShiftBackward:
		return "backward"
	}
	return "none"
}

// World owns the scenery and keeps the recyclable subset in a fixed order.
// The anchor is the road itself, so moving the recyclables moves the anchor.
type World struct {
	bounds      Bounds
	objects     []*Object
	recyclables []*Object
	anchor      *Object
}

// NewWorld tags the given objects into recyclable and static sets. Exactly
// one recyclable road must be present.
func NewWorld(bounds Bounds, objects []*Object) (*World, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	w := &World{bounds: bounds, objects: objects}
	for _, o := range objects {
		if !o.Recyclable() {
			continue
		}
		w.recyclables = append(w.recyclables, o)
		if o.Role == RoleRoad {
			if w.anchor != nil {
				return nil, ErrMultipleAnchors
			}
			w.anchor = o
		}
	}
	if w.anchor == nil {
		return nil, ErrNoAnchor
	}
	return w, nil
}

// NewDefaultWorld builds a world over the reference layout.
func NewDefaultWorld(bounds Bounds) (*World, error) {
	return NewWorld(bounds, DefaultLayout(bounds.SegmentLength))
}

func (w *World) Bounds() Bounds {
	return w.bounds
}

// Anchor is the forward coordinate of the road.
func (w *World) Anchor() float64 {
	return w.anchor.Forward()
}

// Objects returns every scenery object in layout order.
func (w *World) Objects() []*Object {
	return w.objects
}

// Recyclables returns the objects moved by recycle events, in layout order.
func (w *World) Recyclables() []*Object {
	return w.recyclables
}

// Contains reports whether forward lies inside the current window. The
// edges count as inside.
func (w *World) Contains(forward float64) bool {
	d := forward - w.Anchor()
	return d <= w.bounds.RecycleDistance && d >= -w.bounds.RecycleDistance
}

// Recycle compares forward with the window and, when it has left it, moves
// the anchor and every recyclable by one segment in that direction. At most
// one shift happens per call.
func (w *World) Recycle(forward float64) Shift {
	anchor := w.Anchor()
	switch {
	case forward > anchor+w.bounds.RecycleDistance:
		w.shiftAll(w.bounds.SegmentLength)
		return ShiftForward
	case forward < anchor-w.bounds.RecycleDistance:
		w.shiftAll(-w.bounds.SegmentLength)
		return ShiftBackward
	}
	return ShiftNone
}

func (w *World) shiftAll(distance float64) {
	for _, o := range w.recyclables {
		o.shift(distance)
	}
}
