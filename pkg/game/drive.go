package game

import (
	"context"
	"fmt"

	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/sim"
	"github.com/golangdaddy/cruise/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// DriveScreen is the endless road: one simulation tick per Update, one
// projected frame per Draw.
type DriveScreen struct {
	sim      *sim.Simulator
	renderer *render.Renderer
	hud      *ui.HUD
	input    *inputPoller
	batch    triangleBatch
	logger   zerolog.Logger

	buttons controls.ButtonLayout
	held    controls.Button
	snap    sim.Snapshot
	width   int
	height  int
}

// NewDriveScreen creates the driving screen around a simulator
func NewDriveScreen(s *sim.Simulator, hud *ui.HUD, logger zerolog.Logger) (*DriveScreen, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}
	return &DriveScreen{
		sim:      s,
		renderer: render.NewRenderer(),
		hud:      hud,
		input:    newInputPoller(),
		logger:   logger,
		snap:     snap,
	}, nil
}

// Resize relays out the buttons. The projection picks up the new aspect
// on the next Draw.
func (ds *DriveScreen) Resize(width, height int) {
	if width == ds.width && height == ds.height {
		return
	}
	ds.width, ds.height = width, height
	ds.buttons = controls.LayoutButtons(width, height)
	ds.logger.Debug().Int("width", width).Int("height", height).Msg("resized")
}

// Update handles input and advances the simulation by one tick
func (ds *DriveScreen) Update() error {
	frame := ds.input.Poll()
	cmd := controls.Resolve(controls.Translate(frame, ds.buttons))
	ds.held = ds.input.Held(ds.buttons)

	ds.sim.Tick(context.Background(), cmd)

	snap, err := ds.sim.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	ds.snap = snap
	return nil
}

// Draw renders the road, the HUD and the buttons
func (ds *DriveScreen) Draw(screen *ebiten.Image) {
	screen.Fill(road.SkyColor)

	polys := ds.renderer.Frame(ds.snap, ds.width, ds.height)
	drawPolygons(screen, ui.WhiteSubImage(), &ds.batch, polys)

	ds.hud.Draw(screen, ds.snap)
	ui.DrawButtons(screen, ds.buttons, ds.held)
}
