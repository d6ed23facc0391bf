package sim

import (
	"context"
	"fmt"

	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/vehicle"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Simulator drives State one tick at a time for a host frame loop.
type Simulator struct {
	motion vehicle.Motion
	state  *State
	logger zerolog.Logger

	ticks    metric.Int64Counter
	recycles metric.Int64Counter
}

// New validates the tuning and builds a fresh world.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(motion vehicle.Motion, bounds road.Bounds, logger zerolog.Logger) (*Simulator, error) {
	if err := motion.Validate(); err != nil {
		return nil, fmt.Errorf("invalid motion: %w", err)
	}
	state, err := NewState(bounds)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	s := &Simulator{
		motion: motion,
		state:  state,
		logger: logger.With().Str("component", "sim").Logger(),
	}

	m := meter()

	s.ticks, err = m.Int64Counter(
		"sim.ticks",
		metric.WithDescription("Total simulation ticks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick counter: %w", err)
	}

	s.recycles, err = m.Int64Counter(
		"road.recycle.events",
		metric.WithDescription("Total world recycle events by direction"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating recycle counter: %w", err)
	}

	return s, nil
}

// Tick advances the simulation by one frame.
func (s *Simulator) Tick(ctx context.Context, cmd controls.Command) road.Shift {
	if cmd != controls.CommandNone {
		s.logger.Debug().Stringer("command", cmd).Uint64("tick", s.state.Ticks).Msg("input")
	}

	shift := Step(s.state, s.motion, cmd)
	s.ticks.Add(ctx, 1)

	if shift != road.ShiftNone {
		s.recycles.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", shift.String())))
		s.logger.Debug().
			Stringer("direction", shift).
			Float64("position", s.state.Vehicle.Forward()).
			Float64("anchor", s.state.World.Anchor()).
			Uint64("tick", s.state.Ticks).
			Msg("world recycled")
	}
	return shift
}

// State exposes the live state. Hosts should only read it.
func (s *Simulator) State() *State {
	return s.state
}

func (s *Simulator) Motion() vehicle.Motion {
	return s.motion
}

// Snapshot returns a detached copy for rendering.
func (s *Simulator) Snapshot() (Snapshot, error) {
	return s.state.Snapshot()
}
