package cmd

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/matt-g-everett/posetrace/animate"
	"github.com/matt-g-everett/posetrace/config"
	"github.com/matt-g-everett/posetrace/trace"
)

func newRecorder(cfg config.Trace) *trace.Recorder {
	translation, rotation := cfg.Tolerances()
	opts := []trace.Option{
		trace.WithTolerance(trace.Tolerance{
			Translation: translation,
			Rotation:    rotation,
		}),
	}
	if cfg.Name != "" {
		opts = append(opts, trace.WithName(cfg.Name))
	}
	if cfg.DistinctEllipsoid {
		opts = append(opts, trace.WithDistinctEllipsoidMesh())
	}
	return trace.New(cfg.TimeStep(), opts...)
}

// declareScene adds the static objects listed in the config file.
func declareScene(r *trace.Recorder, objects []config.Object) error {
	for _, o := range objects {
		kind, err := trace.ParseShapeKind(o.Shape)
		if err != nil {
			return fmt.Errorf("scene object %q: %w", o.Name, err)
		}

		color := trace.White
		color.A = o.Opacity()
		if o.Color != "" {
			color, err = trace.ColorFromHex(o.Color, o.Opacity())
			if err != nil {
				return fmt.Errorf("scene object %q: %w", o.Name, err)
			}
		}

		switch kind {
		case trace.Sphere:
			r.AddSphere(o.Name, o.Radius, color)
		case trace.Cylinder:
			r.AddCylinder(o.Name, o.Radius, o.Height, color)
		default:
			if len(o.Size) != 3 {
				return fmt.Errorf("scene object %q: %s needs 3 sizes, got %d", o.Name, kind, len(o.Size))
			}
			if kind == trace.Box {
				r.AddBox(o.Name, o.Size[0], o.Size[1], o.Size[2], color)
			} else {
				r.AddEllipsoid(o.Name, o.Size[0], o.Size[1], o.Size[2], color)
			}
		}
	}
	return nil
}

func demoAnimations(cfg config.Trace) []animate.Animation {
	orange, _ := trace.ColorFromHex("#ff8800", 1)
	teal, _ := trace.ColorFromHex("#008080", 1)
	grey, _ := trace.ColorFromHex("#808080", 0.5)

	return []animate.Animation{
		animate.NewBounce("ball", 0.25, 1.5, 1200, -2, 0, orange),
		animate.NewSpin("crate", mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{2, 0.25, 0}, mgl64.Vec3{0, 1, 0.3}, 1.5, teal),
		animate.NewOrbit("moon", cfg.Orbiters, mgl64.Vec3{0, 1, 0}, 3, 0.4, animate.Rainbow),
		animate.NewStill("egg", [3]float64{0.4, 0.6, 0.4}, trace.NewPose(0, 0.3, 2, 0, 0, 0, 1), grey),
	}
}
