package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/cruise/pkg/sim"
)

// KPHPerUnitPerTick converts velocity in world units per tick into the
// speed shown on the dial. Top speed of 0.1 reads 100 KPH.
const KPHPerUnitPerTick = 1000.0

// GaugeMaxKPH fills the gauge bar.
const GaugeMaxKPH = 120.0

// SpeedKPH returns the dial reading for a signed velocity.
func SpeedKPH(velocity float64) float64 {
	return math.Abs(velocity) * KPHPerUnitPerTick
}

// GaugeFraction is how full the gauge bar is, clamped to [0, 1].
func GaugeFraction(kph float64) float64 {
	return math.Max(0, math.Min(kph/GaugeMaxKPH, 1))
}

// SpeedColor picks the numeral colour: green, then yellow, then red.
func SpeedColor(kph float64) color.RGBA {
	switch {
	case kph < 80:
		return color.RGBA{100, 255, 100, 255}
	case kph < 110:
		return color.RGBA{255, 255, 100, 255}
	}
	return color.RGBA{255, 100, 100, 255}
}

// GaugeColor blends green to yellow over the first half of the bar and
// yellow to red over the second.
func GaugeColor(fraction float64) color.RGBA {
	if fraction < 0.5 {
		ratio := fraction / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (fraction - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}

// GearLabel is shown under the numerals.
func GearLabel(velocity, target float64) string {
	switch {
	case velocity < 0 || (velocity == 0 && target < 0):
		return "KPH  R"
	case velocity == 0 && target == 0:
		return "KPH  N"
	}
	return "KPH  D"
}

// DebugLine summarises the simulation for the optional overlay.
func DebugLine(snap sim.Snapshot) string {
	return fmt.Sprintf("tick %d  z %.2f  v %+.3f  anchor %.0f  recycles %d",
		snap.Tick, snap.Vehicle.Forward(), snap.Vehicle.Velocity, snap.Anchor, snap.Recycles)
}
