package game

import (
	"fmt"

	"github.com/golangdaddy/cruise/pkg/config"
	"github.com/golangdaddy/cruise/pkg/sim"
	"github.com/golangdaddy/cruise/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// TicksPerSecond is the frame tick rate. Motion constants are per tick.
const TicksPerSecond = 60

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	currentScreen Screen
	width         int
	height        int
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by screens that depend on the window size.
type Resizer interface {
	Resize(width, height int)
}

// NewGame creates a new game instance
func NewGame(cfg config.Config, logger zerolog.Logger) (*Game, error) {
	s, err := sim.New(cfg.Motion, cfg.World, logger)
	if err != nil {
		return nil, err
	}
	drive, err := NewDriveScreen(s, ui.NewHUD(cfg.HUD.Debug), logger.With().Str("component", "game").Logger())
	if err != nil {
		return nil, err
	}

	g := &Game{currentScreen: drive}
	g.resize(cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout follows the window so the view is never stretched
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.resize(outsideWidth, outsideHeight)
	return g.width, g.height
}

func (g *Game) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g.width, g.height = width, height
	if r, ok := g.currentScreen.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger zerolog.Logger) error {
	g, err := NewGame(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TicksPerSecond)

	logger.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Msg("starting game loop")

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
