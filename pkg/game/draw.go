package game

import (
	"math"

	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps indices inside uint16.
const maxBatchVertices = math.MaxUint16

// triangleBatch collects polygons as triangle fans for DrawTriangles.
type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *triangleBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// fits reports whether n more vertices can be added.
func (b *triangleBatch) fits(n int) bool {
	return len(b.vertices)+n <= maxBatchVertices
}

// add appends the polygon as a fan around its first point.
func (b *triangleBatch) add(p render.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	r := float32(p.Color.R) / 0xff
	g := float32(p.Color.G) / 0xff
	bl := float32(p.Color.B) / 0xff
	a := float32(p.Color.A) / 0xff

	base := uint16(len(b.vertices))
	for _, pt := range p.Points {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   float32(pt.X()),
			DstY:   float32(pt.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		})
	}
	for i := 1; i < len(p.Points)-1; i++ {
		b.indices = append(b.indices, base, base+uint16(i), base+uint16(i+1))
	}
}

// drawPolygons draws polygons in order, flushing whenever the batch fills.
func drawPolygons(screen, src *ebiten.Image, b *triangleBatch, polys []render.Polygon) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	flush := func() {
		if len(b.indices) > 0 {
			screen.DrawTriangles(b.vertices, b.indices, src, op)
		}
		b.reset()
	}

	b.reset()
	for _, p := range polys {
		if !b.fits(len(p.Points)) {
			flush()
		}
		b.add(p)
	}
	flush()
}
