package animate

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/matt-g-everett/posetrace/trace"
)

// A Spin is an Animation that turns a box in place about a fixed axis.
type Spin struct {
	name     string
	size     mgl64.Vec3
	position mgl64.Vec3
	axis     mgl64.Vec3
	rate     float64 // radians per second
	color    trace.RGBA
}

// NewSpin creates a Spin. The axis is normalised.
func NewSpin(name string, size, position, axis mgl64.Vec3, rate float64, color trace.RGBA) *Spin {
	s := new(Spin)
	s.name = name
	s.size = size
	s.position = position
	s.axis = axis.Normalize()
	s.rate = rate
	s.color = color
	return s
}

// Declare adds the box.
func (s *Spin) Declare(r *trace.Recorder) {
	r.AddBox(s.name, s.size.X(), s.size.Y(), s.size.Z(), s.color)
}

// CalculatePoses rotates the box by rate * elapsed seconds.
func (s *Spin) CalculatePoses(runtimeMs int64) map[string]trace.Pose {
	angle := s.rate * float64(runtimeMs) / 1000
	q := mgl64.QuatRotate(angle, s.axis)
	return map[string]trace.Pose{
		s.name: trace.PoseFrom(s.position, q),
	}
}
