package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Target(t *testing.T) {
	tests := []struct {
		cmd    Command
		want   float64
		wantOK bool
	}{
		{CommandForward, 0.1, true},
		{CommandReverse, -0.1, true},
		{CommandRelease, 0, true},
		{CommandNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			got, ok := tt.cmd.Target(0.1)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestBindings_EveryEventMapped(t *testing.T) {
	for e := ForwardKeyDown; e <= WheelDown; e++ {
		_, ok := Bindings[e]
		assert.True(t, ok, "%s has no binding", e)
		assert.NotEqual(t, "unknown", e.String())
	}
	assert.Equal(t, "unknown", Event(99).String())
}

func TestResolve_LastWriteWins(t *testing.T) {
	assert.Equal(t, CommandNone, Resolve(nil))
	assert.Equal(t, CommandForward, Resolve([]Event{ForwardKeyDown}))
	assert.Equal(t, CommandRelease, Resolve([]Event{ForwardKeyDown, ForwardKeyUp}))
	// A key held while the other is released still releases.
	assert.Equal(t, CommandRelease, Resolve([]Event{BackwardKeyDown, ForwardKeyUp}))
	assert.Equal(t, CommandReverse, Resolve([]Event{ForwardTouchStart, WheelDown}))
	assert.Equal(t, CommandReverse, Resolve([]Event{BackwardTouchStart}))
}

type fixedHit map[Point]Button

func (f fixedHit) ButtonAt(p Point) Button { return f[p] }

func TestTranslate_OrderAndFiltering(t *testing.T) {
	fwd := Point{X: 1, Y: 1}
	back := Point{X: 2, Y: 2}
	miss := Point{X: 3, Y: 3}
	hit := fixedHit{fwd: ButtonForward, back: ButtonBackward}

	frame := RawFrame{
		KeysPressed:     []Key{KeyForward},
		KeysReleased:    []Key{KeyBackward},
		PointerPressed:  []Point{miss, back},
		PointerReleased: []Point{fwd},
		TouchStarted:    []Point{fwd},
		TouchEnded:      []Point{miss},
		WheelY:          -1,
	}
	assert.Equal(t, []Event{
		ForwardKeyDown,
		BackwardKeyUp,
		BackwardButtonDown,
		ForwardButtonUp,
		ForwardTouchStart,
		WheelDown,
	}, Translate(frame, hit))
	assert.Equal(t, CommandReverse, Resolve(Translate(frame, hit)))
}

func TestTranslate_WheelDirection(t *testing.T) {
	assert.Equal(t, []Event{WheelUp}, Translate(RawFrame{WheelY: 0.5}, nil))
	assert.Equal(t, []Event{WheelDown}, Translate(RawFrame{WheelY: -2}, nil))
	assert.Empty(t, Translate(RawFrame{}, nil))
}

func TestTranslate_NilHitTesterIgnoresPointer(t *testing.T) {
	events := Translate(RawFrame{PointerPressed: []Point{{X: 1, Y: 1}}}, nil)
	assert.Empty(t, events)
}

func TestRawFrame_Empty(t *testing.T) {
	assert.True(t, RawFrame{}.Empty())
	assert.False(t, RawFrame{WheelY: 1}.Empty())
	assert.False(t, RawFrame{TouchEnded: []Point{{}}}.Empty())
}

func TestLayoutButtons(t *testing.T) {
	l := LayoutButtons(800, 600)

	assert.Equal(t, Rect{X: 368, Y: 544, W: 64, H: 36}, l.Backward)
	assert.Equal(t, Rect{X: 368, Y: 502, W: 64, H: 36}, l.Forward)

	assert.Equal(t, ButtonForward, l.ButtonAt(Point{X: 400, Y: 520}))
	assert.Equal(t, ButtonBackward, l.ButtonAt(Point{X: 400, Y: 560}))
	assert.Equal(t, ButtonNone, l.ButtonAt(Point{X: 400, Y: 540}), "gap between buttons")
	assert.Equal(t, ButtonNone, l.ButtonAt(Point{X: 10, Y: 560}))
	assert.Equal(t, ButtonBackward, l.ButtonAt(Point{X: 368, Y: 544}), "top-left edge is inside")
	assert.Equal(t, ButtonNone, l.ButtonAt(Point{X: 432, Y: 560}), "right edge is outside")
}
