package sim

import (
	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/vehicle"
)

// State is everything one tick reads and writes. Input only ever reaches it
// through the command passed to Step.
type State struct {
	Vehicle  vehicle.Vehicle
	World    *road.World
	Ticks    uint64
	Recycles uint64
}

// NewState places a stationary car at the start of a fresh reference world.
func NewState(bounds road.Bounds) (*State, error) {
	world, err := road.NewDefaultWorld(bounds)
	if err != nil {
		return nil, err
	}
	return &State{
		Vehicle: vehicle.New(vehicle.StartPosition),
		World:   world,
	}, nil
}

// Step runs one tick: apply the command to the target, integrate motion,
// then recycle the world if the car left the window.
func Step(st *State, m vehicle.Motion, cmd controls.Command) road.Shift {
	if target, ok := cmd.Target(m.Speed); ok {
		st.Vehicle.SetTarget(target)
	}
	m.Integrate(&st.Vehicle)

	shift := st.World.Recycle(st.Vehicle.Forward())
	st.Ticks++
	if shift != road.ShiftNone {
		st.Recycles++
	}
	return shift
}
