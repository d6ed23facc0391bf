package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/sim"
	"github.com/golangdaddy/cruise/pkg/vehicle"
)

// Layer orders polygons that a painter's sort alone would get wrong.
// Lower layers are drawn first; only the solid layer is depth sorted.
type Layer int

const (
	LayerSky Layer = iota
	LayerBelowGround
	LayerGround
	LayerDecal
	LayerSolid
)

// Polygon is a filled screen space polygon ready to draw.
type Polygon struct {
	Points []mgl64.Vec2
	Color  color.RGBA
	Layer  Layer
	Depth  float64 // distance in front of the camera, for sorting
	Object int     // scenery id, or VehicleID
}

// VehicleID tags polygons of the car.
const VehicleID = -1

// VehicleShape is the car's box.
var VehicleShape = road.Shape{
	Kind:   road.ShapeBox,
	Width:  vehicle.BodyWidth,
	Height: vehicle.BodyHeight,
	Depth:  vehicle.BodyLength,
}

// Lighting is a white directional light plus ambient, as fractions of 1.
type Lighting struct {
	Direction mgl64.Vec3
	Color     mgl64.Vec3
	Ambient   mgl64.Vec3
}

// LightingFrom reads the light objects of a snapshot.
func LightingFrom(objects []sim.ObjectView) Lighting {
	var l Lighting
	for _, o := range objects {
		switch o.Role {
		case road.RoleDirectionalLight:
			l.Direction = o.Position.Normalize()
			l.Color = unit(o.Color)
		case road.RoleAmbientLight:
			l.Ambient = unit(o.Color)
		}
	}
	return l
}

// Shade applies flat Lambert lighting to a base colour.
func (l Lighting) Shade(base color.RGBA, normal mgl64.Vec3) color.RGBA {
	diffuse := normal.Dot(l.Direction)
	if diffuse < 0 {
		diffuse = 0
	}
	f := func(c uint8, i int) uint8 {
		v := float64(c) * (l.Ambient[i] + diffuse*l.Color[i])
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return color.RGBA{f(base.R, 0), f(base.G, 1), f(base.B, 2), base.A}
}

func unit(c color.RGBA) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Renderer turns snapshots into sorted polygon lists.
type Renderer struct {
	meshes *Meshes
	polys  []Polygon
}

func NewRenderer() *Renderer {
	return &Renderer{meshes: NewMeshes()}
}

// Frame projects the scenery and the car. The returned slice is reused by
// the next call.
func (r *Renderer) Frame(snap sim.Snapshot, width, height int) []Polygon {
	view := NewView(snap.Camera, width, height)
	light := LightingFrom(snap.Objects)

	r.polys = r.polys[:0]
	for _, o := range snap.Objects {
		if o.Shape.Kind == road.ShapeNone {
			continue
		}
		pos := o.Position
		if followsCamera(o.Role) {
			pos[vehicle.ForwardAxis] += view.Eye()[vehicle.ForwardAxis]
		}
		r.addObject(view, light, o.ID, layerOf(o), pos, o.Shape, o.Color, o.Role.Unlit())
	}
	r.addObject(view, light, VehicleID, LayerSolid, snap.Vehicle.Position, VehicleShape, vehicle.BodyColor, false)

	sort.SliceStable(r.polys, func(i, j int) bool {
		a, b := r.polys[i], r.polys[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Layer == LayerSolid || a.Layer == LayerBelowGround {
			return a.Depth > b.Depth
		}
		return false
	})
	return r.polys
}

func (r *Renderer) addObject(view View, light Lighting, id int, layer Layer, pos mgl64.Vec3, shape road.Shape, base color.RGBA, unlit bool) {
	eye := view.Eye()
	for _, face := range r.meshes.Get(shape) {
		world := make([]mgl64.Vec3, len(face.Verts))
		for i, v := range face.Verts {
			world[i] = v.Add(pos)
		}

		// Back faces point away from the eye.
		if face.Normal.Dot(world[0].Sub(eye)) >= 0 {
			continue
		}

		cam := make([]mgl64.Vec3, len(world))
		depth := 0.0
		nearest := math.Inf(-1)
		for i, w := range world {
			cam[i] = view.ToCamera(w)
			depth += -cam[i].Z()
			if cam[i].Z() > nearest {
				nearest = cam[i].Z()
			}
		}
		if -nearest > Far {
			continue
		}
		clipped := ClipNear(cam)
		if clipped == nil {
			continue
		}

		pts := make([]mgl64.Vec2, len(clipped))
		for i, c := range clipped {
			pts[i] = view.ToScreen(c)
		}

		c := base
		if !unlit {
			c = light.Shade(base, face.Normal)
		}
		r.polys = append(r.polys, Polygon{
			Points: pts,
			Color:  c,
			Layer:  layer,
			Depth:  depth / float64(len(cam)),
			Object: id,
		})
	}
}

// followsCamera is true for decoration that stays at a fixed distance from
// the viewer along the road.
func followsCamera(role road.Role) bool {
	return role == road.RoleSky || role == road.RoleSun
}

func layerOf(o sim.ObjectView) Layer {
	switch o.Role {
	case road.RoleSky:
		return LayerSky
	case road.RoleRoad, road.RoleLand:
		return LayerGround
	case road.RoleLaneMarking:
		return LayerDecal
	}
	if top := o.Position.Y() + o.Shape.Height/2; o.Shape.Height > 0 && top <= 0 {
		return LayerBelowGround
	}
	return LayerSolid
}
