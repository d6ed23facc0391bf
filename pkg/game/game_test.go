package game

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/config"
	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/golangdaddy/cruise/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, *DriveScreen) {
	t.Helper()
	g, err := NewGame(config.Default(), zerolog.Nop())
	require.NoError(t, err)
	ds, ok := g.currentScreen.(*DriveScreen)
	require.True(t, ok)
	return g, ds
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Motion.Deceleration = 1
	_, err := NewGame(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, vehicle.ErrDecelerationNotGentler)
}

func TestLayout_FollowsWindow(t *testing.T) {
	g, ds := newTestGame(t)
	assert.Equal(t, controls.LayoutButtons(800, 600), ds.buttons)

	w, h := g.Layout(1280, 720)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, controls.LayoutButtons(1280, 720), ds.buttons)

	w, h = g.Layout(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestDriveScreen_StartsAtRest(t *testing.T) {
	_, ds := newTestGame(t)
	assert.Equal(t, vehicle.StartPosition, ds.snap.Vehicle.Position)
	assert.Equal(t, 0.0, ds.snap.Anchor)
	assert.NotEmpty(t, ds.renderer.Frame(ds.snap, 800, 600))
}

func TestTriangleBatch_Fan(t *testing.T) {
	var b triangleBatch
	b.add(render.Polygon{
		Points: []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {-5, 5}},
		Color:  color.RGBA{255, 0, 0, 255},
	})
	require.Len(t, b.vertices, 5)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}, b.indices)
	assert.Equal(t, float32(1), b.vertices[0].ColorR)
	assert.Equal(t, float32(0), b.vertices[0].ColorG)
	assert.Equal(t, float32(10), b.vertices[2].DstX)

	b.add(render.Polygon{Points: []mgl64.Vec2{{0, 0}, {1, 1}}})
	assert.Len(t, b.vertices, 5, "degenerate polygons are skipped")

	b.add(render.Polygon{Points: []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}}})
	assert.Equal(t, []uint16{5, 6, 7}, b.indices[9:])

	b.reset()
	assert.Empty(t, b.vertices)
	assert.Empty(t, b.indices)
}

func TestTriangleBatch_Fits(t *testing.T) {
	var b triangleBatch
	assert.True(t, b.fits(maxBatchVertices))
	assert.False(t, b.fits(maxBatchVertices+1))
}
