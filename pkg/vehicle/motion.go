package vehicle

import (
	"errors"
	"fmt"
	"math"
)

// snapTolerance absorbs float accumulation so a ramp lands on the target
// after exactly ceil(|dv|/rate) ticks instead of one tick late.
const snapTolerance = 1e-9

// Default tuning of the reference demo, in units per tick.
const (
	DefaultSpeed        = 0.1
	DefaultAcceleration = 0.01
	DefaultDeceleration = 0.005
)

var (
	ErrNonPositiveSpeed        = errors.New("speed must be positive")
	ErrNonPositiveAcceleration = errors.New("acceleration must be positive")
	ErrNonPositiveDeceleration = errors.New("deceleration must be positive")
	ErrDecelerationNotGentler  = errors.New("deceleration must be smaller than acceleration")
)

// Motion holds the integrator constants. Speed is the magnitude input asks
// for; Acceleration is applied when velocity rises toward the target and
// Deceleration when it falls.
type Motion struct {
	Speed        float64 `mapstructure:"speed"`
	Acceleration float64 `mapstructure:"acceleration"`
	Deceleration float64 `mapstructure:"deceleration"`
}

// DefaultMotion returns the reference tuning.
func DefaultMotion() Motion {
	return Motion{
		Speed:        DefaultSpeed,
		Acceleration: DefaultAcceleration,
		Deceleration: DefaultDeceleration,
	}
}

// Validate reports every invalid constant at once.
func (m Motion) Validate() error {
	var errs []error
	if !(m.Speed > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNonPositiveSpeed, m.Speed))
	}
	if !(m.Acceleration > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNonPositiveAcceleration, m.Acceleration))
	}
	if !(m.Deceleration > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNonPositiveDeceleration, m.Deceleration))
	}
	if m.Deceleration >= m.Acceleration {
		errs = append(errs, fmt.Errorf("%w: deceleration %v, acceleration %v",
			ErrDecelerationNotGentler, m.Deceleration, m.Acceleration))
	}
	return errors.Join(errs...)
}

// Step nudges velocity one tick toward target and returns the new velocity.
// It never overshoots the target.
func (m Motion) Step(velocity, target float64) float64 {
	switch {
	case velocity < target:
		next := velocity + m.Acceleration
		if next >= target-snapTolerance {
			return target
		}
		return next
	case velocity > target:
		next := velocity - m.Deceleration
		if next <= target+snapTolerance {
			return target
		}
		return next
	}
	return velocity
}

// Integrate advances the vehicle by one tick: velocity first, then position.
func (m Motion) Integrate(v *Vehicle) {
	v.Velocity = m.Step(v.Velocity, v.Target)
	v.Position[ForwardAxis] += v.Velocity
}

// TicksToConverge returns how many ticks Step needs to move velocity from
// `from` to `to`.
func (m Motion) TicksToConverge(from, to float64) int {
	switch {
	case from < to:
		return int(math.Ceil((to - from) / m.Acceleration))
	case from > to:
		return int(math.Ceil((from - to) / m.Deceleration))
	}
	return 0
}
