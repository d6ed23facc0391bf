package sim

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/vehicle"
	"github.com/jinzhu/copier"
)

// ObjectView is a detached copy of one scenery object.
type ObjectView struct {
	ID       int
	Name     string
	Role     road.Role
	Group    road.Group
	Position mgl64.Vec3
	Shape    road.Shape
	Color    color.RGBA
}

// Snapshot is what renderers draw. Changing it never touches the state.
type Snapshot struct {
	Tick     uint64
	Recycles uint64
	Anchor   float64
	Vehicle  vehicle.Vehicle
	Camera   Camera
	Objects  []ObjectView
}

// Snapshot copies the vehicle and every scenery object.
func (st *State) Snapshot() (Snapshot, error) {
	objects := st.World.Objects()
	snap := Snapshot{
		Tick:     st.Ticks,
		Recycles: st.Recycles,
		Anchor:   st.World.Anchor(),
		Vehicle:  st.Vehicle,
		Camera:   FollowCamera(st.Vehicle),
		Objects:  make([]ObjectView, len(objects)),
	}
	for i, o := range objects {
		if err := copier.Copy(&snap.Objects[i], o); err != nil {
			return Snapshot{}, fmt.Errorf("copying %s: %w", o.Name, err)
		}
	}
	return snap, nil
}
