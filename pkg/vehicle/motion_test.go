package vehicle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMotion_Validates(t *testing.T) {
	require.NoError(t, DefaultMotion().Validate())
}

func TestMotion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		motion  Motion
		wantErr error
	}{
		{"zero speed", Motion{Speed: 0, Acceleration: 0.01, Deceleration: 0.005}, ErrNonPositiveSpeed},
		{"negative acceleration", Motion{Speed: 0.1, Acceleration: -0.01, Deceleration: 0.005}, ErrNonPositiveAcceleration},
		{"zero deceleration", Motion{Speed: 0.1, Acceleration: 0.01, Deceleration: 0}, ErrNonPositiveDeceleration},
		{"equal rates", Motion{Speed: 0.1, Acceleration: 0.01, Deceleration: 0.01}, ErrDecelerationNotGentler},
		{"harsher deceleration", Motion{Speed: 0.1, Acceleration: 0.01, Deceleration: 0.02}, ErrDecelerationNotGentler},
		{"NaN speed", Motion{Speed: math.NaN(), Acceleration: 0.01, Deceleration: 0.005}, ErrNonPositiveSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.motion.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIntegrate_ReachesTopSpeedExactlyOnSchedule(t *testing.T) {
	m := DefaultMotion()
	v := New(mgl64.Vec3{0, 0.25, 0})
	v.SetTarget(m.Speed)

	n := int(math.Ceil(m.Speed / m.Acceleration))
	require.Equal(t, n, m.TicksToConverge(0, m.Speed))

	for tick := 1; tick <= n; tick++ {
		m.Integrate(&v)
		if tick < n {
			assert.Less(t, v.Velocity, m.Speed, "tick %d reached top speed early", tick)
		}
	}
	assert.Equal(t, m.Speed, v.Velocity)
}

func TestIntegrate_ReleaseFromTopSpeedStopsMonotonically(t *testing.T) {
	m := DefaultMotion()
	v := Vehicle{Velocity: m.Speed}
	v.SetTarget(0)

	n := int(math.Ceil(m.Speed / m.Deceleration))
	prev := v.Velocity
	for tick := 1; tick <= n; tick++ {
		m.Integrate(&v)
		assert.LessOrEqual(t, v.Velocity, prev, "velocity rose at tick %d", tick)
		assert.GreaterOrEqual(t, v.Velocity, 0.0, "velocity undershot at tick %d", tick)
		prev = v.Velocity
	}
	assert.Equal(t, 0.0, v.Velocity)
	assert.False(t, v.Moving())
}

func TestIntegrate_NeverOvershootsOrJumps(t *testing.T) {
	m := DefaultMotion()
	v := Vehicle{}
	targets := []float64{m.Speed, -m.Speed, 0, -m.Speed, m.Speed, 0}

	for _, target := range targets {
		v.SetTarget(target)
		for i := 0; i < 100; i++ {
			before := v.Velocity
			m.Integrate(&v)

			step := v.Velocity - before
			assert.LessOrEqual(t, step, m.Acceleration+1e-12)
			assert.GreaterOrEqual(t, step, -m.Deceleration-1e-12)
			assert.LessOrEqual(t, math.Abs(v.Velocity), m.Speed)

			// Moving toward a target never carries past it.
			if before <= target {
				assert.LessOrEqual(t, v.Velocity, target)
			} else {
				assert.GreaterOrEqual(t, v.Velocity, target)
			}
		}
		assert.Equal(t, target, v.Velocity)
	}
}

func TestIntegrate_SignFlipPassesThroughZero(t *testing.T) {
	m := DefaultMotion()
	v := Vehicle{Velocity: m.Speed}
	v.SetTarget(-m.Speed)

	sawZero := false
	for i := 0; i < m.TicksToConverge(m.Speed, -m.Speed); i++ {
		before := v.Velocity
		m.Integrate(&v)
		if math.Abs(v.Velocity) < 1e-9 || (before > 0 && v.Velocity < 0) {
			sawZero = true
		}
		// Falling velocity always uses the deceleration rate.
		assert.InDelta(t, m.Deceleration, before-v.Velocity, 1e-9)
	}
	assert.True(t, sawZero)
	assert.Equal(t, -m.Speed, v.Velocity)
}

func TestIntegrate_MovesOnlyForwardAxis(t *testing.T) {
	m := DefaultMotion()
	v := New(mgl64.Vec3{3, 0.25, 10})
	v.SetTarget(m.Speed)

	for i := 0; i < 50; i++ {
		m.Integrate(&v)
	}
	assert.Equal(t, 3.0, v.Position.X())
	assert.Equal(t, 0.25, v.Position.Y())
	assert.Greater(t, v.Forward(), 10.0)
}

func TestStep_AtTargetIsNoop(t *testing.T) {
	m := DefaultMotion()
	assert.Equal(t, 0.05, m.Step(0.05, 0.05))
	assert.Equal(t, 0, m.TicksToConverge(0.05, 0.05))
}

func TestTicksToConverge_UsesRateByDirection(t *testing.T) {
	m := DefaultMotion()
	assert.Equal(t, 10, m.TicksToConverge(0, m.Speed))
	assert.Equal(t, 20, m.TicksToConverge(m.Speed, 0))
	assert.Equal(t, 10, m.TicksToConverge(-m.Speed, 0))
}
