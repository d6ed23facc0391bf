// Package rlview draws the simulation with raylib's native 3D primitives.
// It shares the simulation, controls and button layout with the ebiten
// frontend and only differs in how the frame reaches the screen.
package rlview

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/cruise/pkg/config"
	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/golangdaddy/cruise/pkg/render"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/sim"
	"github.com/golangdaddy/cruise/pkg/vehicle"
	"github.com/rs/zerolog"
)

const (
	fontSize    = 20
	dialFont    = 40
	sphereRings = 16
)

// View owns the raylib window loop.
type View struct {
	sim    *sim.Simulator
	input  *poller
	debug  bool
	logger zerolog.Logger

	buttons controls.ButtonLayout
	width   int
	height  int
}

func New(cfg config.Config, logger zerolog.Logger) (*View, error) {
	s, err := sim.New(cfg.Motion, cfg.World, logger)
	if err != nil {
		return nil, fmt.Errorf("creating simulator: %w", err)
	}
	return &View{
		sim:    s,
		input:  newPoller(),
		debug:  cfg.HUD.Debug,
		logger: logger.With().Str("component", "rlview").Logger(),
	}, nil
}

// Run opens the window and blocks until it is closed.
func (v *View) Run(cfg config.Config) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v.logger.Info().Int("width", cfg.Window.Width).Int("height", cfg.Window.Height).Msg("window open")

	ctx := context.Background()
	for !rl.WindowShouldClose() {
		v.resize(rl.GetScreenWidth(), rl.GetScreenHeight())

		frame := v.input.Poll()
		cmd := controls.Resolve(controls.Translate(frame, v.buttons))
		v.sim.Tick(ctx, cmd)

		snap, err := v.sim.Snapshot()
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rgba(road.SkyColor))
		v.drawWorld(snap)
		v.drawHUD(snap)
		v.drawButtons(v.input.Held(v.buttons))
		rl.EndDrawing()
	}
	return nil
}

func (v *View) resize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.buttons = controls.LayoutButtons(width, height)
}

func (v *View) drawWorld(snap sim.Snapshot) {
	light := render.LightingFrom(snap.Objects)
	up := mgl64.Vec3{0, 1, 0}

	rl.BeginMode3D(camera3D(snap.Camera))
	for _, o := range snap.Objects {
		c := o.Color
		if !o.Role.Unlit() {
			c = light.Shade(c, up)
		}
		pos := o.Position
		if o.Role == road.RoleSun {
			pos[vehicle.ForwardAxis] += snap.Camera.Eye[vehicle.ForwardAxis]
		}

		switch o.Shape.Kind {
		case road.ShapePlane:
			rl.DrawPlane(vec3(pos), rl.NewVector2(float32(o.Shape.Width), float32(o.Shape.Depth)), rgba(c))
		case road.ShapeBox:
			rl.DrawCube(vec3(pos), float32(o.Shape.Width), float32(o.Shape.Height), float32(o.Shape.Depth), rgba(c))
		case road.ShapeCone:
			rl.DrawCylinder(cylinderBase(pos, o.Shape.Height), 0, float32(o.Shape.Radius),
				float32(o.Shape.Height), int32(o.Shape.Segments), rgba(c))
		case road.ShapeCylinder:
			rl.DrawCylinder(cylinderBase(pos, o.Shape.Height), float32(o.Shape.Radius), float32(o.Shape.Radius),
				float32(o.Shape.Height), int32(o.Shape.Segments), rgba(c))
		case road.ShapeSphere:
			if o.Shape.Inside {
				// The cleared background stands in for the sky dome.
				continue
			}
			rl.DrawSphereEx(vec3(pos), float32(o.Shape.Radius), sphereRings, int32(o.Shape.Segments), rgba(c))
		}
	}

	car := light.Shade(vehicle.BodyColor, up)
	rl.DrawCube(vec3(snap.Vehicle.Position), vehicle.BodyWidth, vehicle.BodyHeight, vehicle.BodyLength, rgba(car))
	rl.EndMode3D()
}

func (v *View) drawHUD(snap sim.Snapshot) {
	kph := render.SpeedKPH(snap.Vehicle.Velocity)

	rl.DrawRectangle(20, 20, 180, 120, rl.NewColor(20, 20, 30, 200))
	rl.DrawRectangleLines(20, 20, 180, 120, rl.NewColor(100, 100, 120, 255))

	speed := fmt.Sprintf("%.0f", kph)
	rl.DrawText(speed, 110-rl.MeasureText(speed, dialFont)/2, 40, dialFont, rgba(render.SpeedColor(kph)))
	gear := render.GearLabel(snap.Vehicle.Velocity, snap.Vehicle.Target)
	rl.DrawText(gear, 110-rl.MeasureText(gear, fontSize)/2, 88, fontSize, rl.LightGray)

	fraction := render.GaugeFraction(kph)
	rl.DrawRectangle(30, 115, 160, 15, rl.NewColor(40, 40, 40, 255))
	rl.DrawRectangle(30, 115, int32(160*fraction), 15, rgba(render.GaugeColor(fraction)))
	rl.DrawRectangleLines(30, 115, 160, 15, rl.NewColor(150, 150, 150, 255))

	if v.debug {
		rl.DrawText(render.DebugLine(snap), 10, int32(v.height)-24, fontSize, rl.DarkGray)
	}
}

func (v *View) drawButtons(held controls.Button) {
	for _, b := range []controls.Button{controls.ButtonForward, controls.ButtonBackward} {
		r := v.buttons.Forward
		label := "UP"
		if b == controls.ButtonBackward {
			r = v.buttons.Backward
			label = "DOWN"
		}
		bg := rl.NewColor(0, 0, 255, 255)
		if held == b {
			bg = rl.NewColor(80, 80, 255, 255)
		}
		rect := rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
		rl.DrawRectangleRounded(rect, 0.4, 8, bg)
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(r.X+r.W/2)-w/2, int32(r.Y+r.H/2)-fontSize/2, fontSize, rl.White)
	}
}
