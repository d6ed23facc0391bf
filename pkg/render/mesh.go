package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/road"
)

// Face is a flat convex polygon in the shape's local space.
type Face struct {
	Verts  []mgl64.Vec3
	Normal mgl64.Vec3
}

// Centroid is the vertex average.
func (f Face) Centroid() mgl64.Vec3 {
	var c mgl64.Vec3
	for _, v := range f.Verts {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(f.Verts)))
}

// Mesh is a shape broken into faces, centred on the origin.
type Mesh []Face

// Meshes caches one mesh per distinct shape.
type Meshes struct {
	cache map[road.Shape]Mesh
}

func NewMeshes() *Meshes {
	return &Meshes{cache: make(map[road.Shape]Mesh)}
}

func (m *Meshes) Get(s road.Shape) Mesh {
	if mesh, ok := m.cache[s]; ok {
		return mesh
	}
	mesh := BuildMesh(s)
	m.cache[s] = mesh
	return mesh
}

// BuildMesh tessellates a shape. ShapeNone yields an empty mesh.
func BuildMesh(s road.Shape) Mesh {
	var mesh Mesh
	switch s.Kind {
	case road.ShapePlane:
		mesh = planeMesh(s.Width, s.Depth)
	case road.ShapeBox:
		mesh = boxMesh(s.Width, s.Height, s.Depth)
	case road.ShapeCone:
		mesh = coneMesh(s.Radius, s.Height, segments(s.Segments, 3))
	case road.ShapeCylinder:
		mesh = cylinderMesh(s.Radius, s.Height, segments(s.Segments, 3))
	case road.ShapeSphere:
		mesh = sphereMesh(s.Radius, segments(s.Segments, 4))
	}
	if s.Inside {
		for i := range mesh {
			mesh[i].Normal = mesh[i].Normal.Mul(-1)
		}
	}
	return mesh
}

func segments(n, least int) int {
	if n < least {
		return least
	}
	return n
}

func planeMesh(w, d float64) Mesh {
	hw, hd := w/2, d/2
	return Mesh{{
		Verts: []mgl64.Vec3{
			{-hw, 0, -hd}, {hw, 0, -hd}, {hw, 0, hd}, {-hw, 0, hd},
		},
		Normal: mgl64.Vec3{0, 1, 0},
	}}
}

func boxMesh(w, h, d float64) Mesh {
	x, y, z := w/2, h/2, d/2
	quads := [][]mgl64.Vec3{
		{{x, -y, -z}, {x, y, -z}, {x, y, z}, {x, -y, z}},
		{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}},
		{{-x, y, -z}, {-x, y, z}, {x, y, z}, {x, y, -z}},
		{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}},
		{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}},
		{{-x, -y, -z}, {-x, y, -z}, {x, y, -z}, {x, -y, -z}},
	}
	mesh := make(Mesh, 0, len(quads))
	for _, q := range quads {
		mesh = append(mesh, convexFace(q))
	}
	return mesh
}

func ring(r, y float64, n int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = mgl64.Vec3{r * math.Sin(a), y, r * math.Cos(a)}
	}
	return pts
}

func coneMesh(r, h float64, n int) Mesh {
	base := ring(r, -h/2, n)
	apex := mgl64.Vec3{0, h / 2, 0}
	mesh := make(Mesh, 0, n+1)
	for i := 0; i < n; i++ {
		mesh = append(mesh, convexFace([]mgl64.Vec3{base[i], base[(i+1)%n], apex}))
	}
	return append(mesh, Face{Verts: reversed(base), Normal: mgl64.Vec3{0, -1, 0}})
}

func cylinderMesh(r, h float64, n int) Mesh {
	bottom := ring(r, -h/2, n)
	top := ring(r, h/2, n)
	mesh := make(Mesh, 0, n+2)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mesh = append(mesh, convexFace([]mgl64.Vec3{bottom[i], bottom[j], top[j], top[i]}))
	}
	return append(mesh,
		Face{Verts: top, Normal: mgl64.Vec3{0, 1, 0}},
		Face{Verts: reversed(bottom), Normal: mgl64.Vec3{0, -1, 0}},
	)
}

// sphereMesh uses n longitude segments and n/2 latitude bands. The pole
// bands are triangles.
func sphereMesh(r float64, n int) Mesh {
	bands := n / 2
	point := func(band, seg int) mgl64.Vec3 {
		theta := math.Pi * float64(band) / float64(bands)
		phi := 2 * math.Pi * float64(seg) / float64(n)
		return mgl64.Vec3{
			r * math.Sin(theta) * math.Sin(phi),
			r * math.Cos(theta),
			r * math.Sin(theta) * math.Cos(phi),
		}
	}

	mesh := make(Mesh, 0, bands*n)
	for b := 0; b < bands; b++ {
		for s := 0; s < n; s++ {
			var verts []mgl64.Vec3
			switch b {
			case 0:
				verts = []mgl64.Vec3{point(0, 0), point(1, s), point(1, s+1)}
			case bands - 1:
				verts = []mgl64.Vec3{point(b, s), point(bands, 0), point(b, s+1)}
			default:
				verts = []mgl64.Vec3{point(b, s), point(b+1, s), point(b+1, s+1), point(b, s+1)}
			}
			f := Face{Verts: verts}
			f.Normal = f.Centroid().Normalize()
			mesh = append(mesh, f)
		}
	}
	return mesh
}

// convexFace computes an outward normal for a face of a convex solid that
// contains the origin.
func convexFace(verts []mgl64.Vec3) Face {
	n := verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0])).Normalize()
	f := Face{Verts: verts, Normal: n}
	if n.Dot(f.Centroid()) < 0 {
		f.Normal = n.Mul(-1)
	}
	return f
}

func reversed(pts []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
