package ui

import (
	"image/color"

	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	buttonColor        = color.RGBA{0, 0, 255, 255}
	buttonPressedColor = color.RGBA{80, 80, 255, 255}
	buttonBorderColor  = color.RGBA{0, 0, 160, 255}
	buttonTextColor    = color.RGBA{255, 255, 255, 255}
)

// ButtonLabel is the caption of an on-screen button.
func ButtonLabel(b controls.Button) string {
	switch b {
	case controls.ButtonForward:
		return "▲"
	case controls.ButtonBackward:
		return "▼"
	}
	return ""
}

// DrawButtons draws both driving buttons. held is highlighted.
func DrawButtons(screen *ebiten.Image, layout controls.ButtonLayout, held controls.Button) {
	drawButton(screen, layout.Forward, ButtonLabel(controls.ButtonForward), held == controls.ButtonForward)
	drawButton(screen, layout.Backward, ButtonLabel(controls.ButtonBackward), held == controls.ButtonBackward)
}

// drawButton draws a button with background and text
func drawButton(screen *ebiten.Image, r controls.Rect, label string, pressed bool) {
	bg := buttonColor
	if pressed {
		bg = buttonPressedColor
	}
	fillRect(screen, r.X, r.Y, r.W, r.H, bg)
	strokeRect(screen, r.X, r.Y, r.W, r.H, 2, buttonBorderColor)
	drawText(screen, label, r.X+r.W/2, r.Y+r.H/2, 12, buttonTextColor)
}
