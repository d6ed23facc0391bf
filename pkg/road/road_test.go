package road

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewDefaultWorld(DefaultBounds())
	require.NoError(t, err)
	return w
}

func TestDefaultLayout_ReferenceScene(t *testing.T) {
	objects := DefaultLayout(DefaultSegmentLength)

	counts := map[Role]int{}
	for i, o := range objects {
		assert.Equal(t, i, o.ID, "ids follow layout order")
		counts[o.Role]++
	}
	assert.Equal(t, 1, counts[RoleRoad])
	assert.Equal(t, 2, counts[RoleLand])
	assert.Equal(t, 200, counts[RoleLaneMarking])
	assert.Equal(t, 40, counts[RoleTreeTop])
	assert.Equal(t, 40, counts[RoleTreeTrunk])
	assert.Equal(t, 1, counts[RoleSky])
	assert.Equal(t, 1, counts[RoleSun])
	assert.Equal(t, 1, counts[RoleDirectionalLight])
	assert.Equal(t, 1, counts[RoleAmbientLight])
}

func TestDefaultLayout_Positions(t *testing.T) {
	objects := DefaultLayout(DefaultSegmentLength)
	byName := map[string]*Object{}
	for _, o := range objects {
		byName[o.Name] = o
	}

	assert.Equal(t, mgl64.Vec3{-55, -0.1, 0}, byName["land-left"].Position)
	assert.Equal(t, mgl64.Vec3{55, -0.1, 0}, byName["land-right"].Position)
	assert.Equal(t, mgl64.Vec3{0, 0.01, -500}, byName["marking-0"].Position)
	assert.Equal(t, mgl64.Vec3{0, 0.01, 495}, byName["marking-199"].Position)
	assert.Equal(t, mgl64.Vec3{-20, 2.5, -500}, byName["tree-left-0-top"].Position)
	assert.Equal(t, mgl64.Vec3{-20, -1, -500}, byName["tree-left-0-trunk"].Position)
	assert.Equal(t, mgl64.Vec3{20, 2.5, -480}, byName["tree-right-0-top"].Position)
	assert.Equal(t, mgl64.Vec3{20, 2.5, 470}, byName["tree-right-19-top"].Position)
	assert.Equal(t, mgl64.Vec3{100, 100, -200}, byName["sun"].Position)
}

func TestNewWorld_ClassifiesByGroupTag(t *testing.T) {
	w := newDefaultWorld(t)

	assert.Len(t, w.Objects(), 287)
	assert.Len(t, w.Recyclables(), 283)
	for _, o := range w.Recyclables() {
		assert.True(t, o.Recyclable())
		assert.NotContains(t, []Role{RoleSky, RoleSun, RoleDirectionalLight, RoleAmbientLight}, o.Role)
	}
	assert.Equal(t, RoleRoad, w.Recyclables()[0].Role)
}

func TestNewWorld_AnchorErrors(t *testing.T) {
	b := DefaultBounds()
	shape := Shape{Kind: ShapePlane, Width: 1, Depth: 1}

	_, err := NewWorld(b, []*Object{{Role: RoleLand, Group: GroupRecyclable, Shape: shape}})
	assert.ErrorIs(t, err, ErrNoAnchor)

	// A road tagged static is not an anchor.
	_, err = NewWorld(b, []*Object{{Role: RoleRoad, Group: GroupStatic, Shape: shape}})
	assert.ErrorIs(t, err, ErrNoAnchor)

	_, err = NewWorld(b, []*Object{
		{Role: RoleRoad, Group: GroupRecyclable},
		{Role: RoleRoad, Group: GroupRecyclable},
	})
	assert.ErrorIs(t, err, ErrMultipleAnchors)
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr error
	}{
		{"reference", DefaultBounds(), nil},
		{"window longer than segment", Bounds{SegmentLength: 1000, RecycleDistance: 600}, ErrWindowExceedsSegment},
		{"segment longer than window", Bounds{SegmentLength: 1000, RecycleDistance: 400}, ErrSegmentExceedsWindow},
		{"zero segment", Bounds{SegmentLength: 0, RecycleDistance: 500}, ErrNonPositiveBounds},
		{"negative distance", Bounds{SegmentLength: 1000, RecycleDistance: -500}, ErrNonPositiveBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewDefaultWorld(Bounds{SegmentLength: 1000, RecycleDistance: 600})
	assert.ErrorIs(t, err, ErrWindowExceedsSegment)
}

func TestRecycle_NoopInsideWindowIncludingEdges(t *testing.T) {
	w := newDefaultWorld(t)
	before := positions(w)

	for _, forward := range []float64{0, 250, -250, 499.999, 500, -500} {
		assert.Equal(t, ShiftNone, w.Recycle(forward), "forward %v", forward)
		assert.True(t, w.Contains(forward))
	}
	assert.Equal(t, 0.0, w.Anchor())
	assert.Equal(t, before, positions(w))
}

func TestRecycle_ForwardShiftsEverythingOneSegment(t *testing.T) {
	w := newDefaultWorld(t)
	before := positions(w)

	assert.False(t, w.Contains(500.05))
	assert.Equal(t, ShiftForward, w.Recycle(500.05))
	assert.Equal(t, 1000.0, w.Anchor())
	assert.True(t, w.Contains(500.05))

	for _, o := range w.Objects() {
		want := before[o.ID]
		if o.Recyclable() {
			want[2] += 1000
		}
		assert.Equal(t, want, o.Position, "%s", o.Name)
	}

	// The car is now at the back edge of the new window; nothing more happens.
	assert.Equal(t, ShiftNone, w.Recycle(500.05))
}

func TestRecycle_BackwardShift(t *testing.T) {
	w := newDefaultWorld(t)

	assert.Equal(t, ShiftBackward, w.Recycle(-500.1))
	assert.Equal(t, -1000.0, w.Anchor())
	assert.Equal(t, ShiftNone, w.Recycle(-500.1))
}

func TestRecycle_PreservesRelativeOffsets(t *testing.T) {
	w := newDefaultWorld(t)
	rec := w.Recyclables()
	offsets := make([]float64, len(rec))
	for i, o := range rec {
		offsets[i] = o.Forward() - w.Anchor()
	}

	forward := 0.0
	for _, step := range []float64{600, 1000, 1000, -1000, -1000, -1000, -1000, 1000} {
		forward += step
		w.Recycle(forward)
		for i, o := range rec {
			assert.Equal(t, offsets[i], o.Forward()-w.Anchor(), "%s drifted", o.Name)
		}
	}
}

func TestShift_String(t *testing.T) {
	assert.Equal(t, "none", ShiftNone.String())
	assert.Equal(t, "forward", ShiftForward.String())
	assert.Equal(t, "backward", ShiftBackward.String())
	assert.Equal(t, "lane-marking", RoleLaneMarking.String())
	assert.Equal(t, "recyclable", GroupRecyclable.String())
}

func positions(w *World) map[int]mgl64.Vec3 {
	out := make(map[int]mgl64.Vec3, len(w.Objects()))
	for _, o := range w.Objects() {
		out[o.ID] = o.Position
	}
	return out
}
