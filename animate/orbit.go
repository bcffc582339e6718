package animate

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/matt-g-everett/posetrace/trace"
)

// An Orbit is an Animation that circles a ring of cylinders around a centre
// point. Each cylinder is tinted from a GradientTable.
type Orbit struct {
	prefix   string
	count    int
	centre   mgl64.Vec3
	distance float64
	rate     float64 // radians per second
	radius   float64
	height   float64
	colours  []trace.RGBA
}

// NewOrbit creates an Orbit of count cylinders named prefix-0, prefix-1, ...
func NewOrbit(prefix string, count int, centre mgl64.Vec3, distance, rate float64, gradient GradientTable) *Orbit {
	o := new(Orbit)
	o.prefix = prefix
	o.count = count
	o.centre = centre
	o.distance = distance
	o.rate = rate
	o.radius = 0.1
	o.height = 0.5
	o.colours = gradient.Palette(count, 0.8, 0.6)
	return o
}

func (o *Orbit) entity(i int) string {
	return fmt.Sprintf("%s-%d", o.prefix, i)
}

// Declare adds one cylinder per orbiter.
func (o *Orbit) Declare(r *trace.Recorder) {
	for i := 0; i < o.count; i++ {
		r.AddCylinder(o.entity(i), o.radius, o.height, o.colours[i])
	}
}

// CalculatePoses spaces the orbiters evenly and turns each to face its direction of travel.
func (o *Orbit) CalculatePoses(runtimeMs int64) map[string]trace.Pose {
	poses := make(map[string]trace.Pose, o.count)
	base := o.rate * float64(runtimeMs) / 1000
	for i := 0; i < o.count; i++ {
		angle := base + 2*math.Pi*float64(i)/float64(o.count)
		offset := mgl64.Vec3{math.Cos(angle) * o.distance, 0, math.Sin(angle) * o.distance}
		heading := mgl64.QuatRotate(-angle, mgl64.Vec3{0, 1, 0})
		poses[o.entity(i)] = trace.PoseFrom(o.centre.Add(offset), heading)
	}
	return poses
}
