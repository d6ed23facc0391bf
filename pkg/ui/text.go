package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// glyphHeight is the natural height of the bitmap font in pixels.
const glyphHeight = 16.0

var (
	face = text.NewGoXFace(bitmapfont.Face)

	whiteSubImage *ebiten.Image
)

// WhiteSubImage is a 1x1 white source for solid fills and DrawTriangles.
// It is created on first use, inside the game loop.
func WhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillRect draws a solid rectangle without allocating an image per call.
func fillRect(screen *ebiten.Image, x, y, width, height float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(WhiteSubImage(), op)
}

// strokeRect draws a border of the given thickness inside the rectangle.
func strokeRect(screen *ebiten.Image, x, y, width, height, thickness float64, clr color.Color) {
	fillRect(screen, x, y, width, thickness, clr)
	fillRect(screen, x, y+height-thickness, width, thickness, clr)
	fillRect(screen, x, y, thickness, height, clr)
	fillRect(screen, x+width-thickness, y, thickness, height, clr)
}

// drawText draws text centred on (centerX, centerY) at the given pixel size.
func drawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	textWidth := text.Advance(str, face) * scale

	textX := centerX - textWidth/2
	textY := centerY - glyphHeight*scale/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws text with its top left corner at (x, y).
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
