package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/golangdaddy/cruise/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD draws the overlay on top of the 3D view.
type HUD struct {
	Debug bool
}

func NewHUD(debug bool) *HUD {
	return &HUD{Debug: debug}
}

func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	h.drawSpeedometer(screen, snap)
	if h.Debug {
		height := float64(screen.Bounds().Dy())
		drawTextAt(screen, render.DebugLine(snap), 10, height-18, 12, color.RGBA{20, 20, 30, 255})
	}
}

// drawSpeedometer draws the dial in the top-left corner
func (h *HUD) drawSpeedometer(screen *ebiten.Image, snap sim.Snapshot) {
	kph := render.SpeedKPH(snap.Vehicle.Velocity)

	x, y := 20.0, 20.0
	width, height := 180.0, 120.0

	fillRect(screen, x, y, width, height, color.RGBA{20, 20, 30, 200})
	strokeRect(screen, x, y, width, height, 2, color.RGBA{100, 100, 120, 255})

	drawText(screen, fmt.Sprintf("%.0f", kph), x+width/2, y+45, 48, render.SpeedColor(kph))
	drawText(screen, render.GearLabel(snap.Vehicle.Velocity, snap.Vehicle.Target), x+width/2, y+80, 18, color.RGBA{200, 200, 200, 255})

	h.drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, kph)
}

// drawSpeedGauge draws a horizontal bar filled in proportion to speed
func (h *HUD) drawSpeedGauge(screen *ebiten.Image, x, y, width, height, kph float64) {
	fillRect(screen, x, y, width, height, color.RGBA{40, 40, 40, 255})

	fraction := render.GaugeFraction(kph)
	if filled := width * fraction; filled > 0 {
		fillRect(screen, x, y, filled, height, render.GaugeColor(fraction))
	}
	strokeRect(screen, x, y, width, height, 1, color.RGBA{150, 150, 150, 255})
}
