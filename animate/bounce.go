package animate

import (
	"github.com/matt-g-everett/posetrace/trace"
	"github.com/matt-g-everett/posetrace/util"
)

// A Bounce is an Animation that lifts a sphere off the ground and drops it
// back, eased in and out.
type Bounce struct {
	name     string
	radius   float64
	height   float64
	periodMs int64
	x, z     float64
	color    trace.RGBA
	lut      []float64
	memoizer util.Memoizer
}

// NewBounce creates a Bounce for a sphere resting at (x, z) on the ground plane.
func NewBounce(name string, radius, height float64, periodMs int64, x, z float64, color trace.RGBA) *Bounce {
	b := new(Bounce)
	b.name = name
	b.radius = radius
	b.height = height
	b.periodMs = periodMs
	b.x = x
	b.z = z
	b.color = color
	b.memoizer = util.Memoizer{}
	b.lut = util.GenerateLutMemoized(120, b.memoizer)
	return b
}

// Declare adds the sphere.
func (b *Bounce) Declare(r *trace.Recorder) {
	r.AddSphere(b.name, b.radius, b.color)
}

// CalculatePoses places the sphere on its eased arc.
func (b *Bounce) CalculatePoses(runtimeMs int64) map[string]trace.Pose {
	gain := 0.0
	if b.periodMs > 0 {
		phase := float64(runtimeMs%b.periodMs) / float64(b.periodMs)
		gain = b.lut[int(phase*float64(len(b.lut)))]
	}

	y := b.radius + b.height*gain
	return map[string]trace.Pose{
		b.name: trace.NewPose(b.x, y, b.z, 0, 0, 0, 1),
	}
}
