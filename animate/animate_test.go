package animate

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/posetrace/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounce(t *testing.T) {
	b := NewBounce("ball", 0.5, 2, 1000, 1, -1, trace.White)

	r := trace.New(0.1)
	b.Declare(r)
	require.Len(t, r.Objects(), 1)
	assert.Equal(t, trace.MeshSphere, r.Objects()[0].Mesh)

	start := b.CalculatePoses(0)["ball"]
	assert.Equal(t, trace.NewPose(1, 0.5, -1, 0, 0, 0, 1), start)

	peak := b.CalculatePoses(499)["ball"]
	assert.Greater(t, peak.T.Y, 2.0)
	assert.LessOrEqual(t, peak.T.Y, 2.5)

	assert.Equal(t, start, b.CalculatePoses(1000)["ball"])
}

// TestBounce_OwnsLut tests that each Bounce keeps its own table cache.
func TestBounce_OwnsLut(t *testing.T) {
	a := NewBounce("a", 1, 1, 1000, 0, 0, trace.White)
	b := NewBounce("b", 1, 1, 1000, 0, 0, trace.White)

	assert.Len(t, a.memoizer, 1)
	assert.Len(t, b.memoizer, 1)
	assert.NotSame(t, &a.lut[0], &b.lut[0])
}

func TestSpin(t *testing.T) {
	s := NewSpin("crate", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 2}, math.Pi, trace.White)

	r := trace.New(0.1)
	s.Declare(r)
	assert.Equal(t, trace.Triplet{X: 1, Y: 2, Z: 3}, r.Objects()[0].Scale)
	assert.Equal(t, trace.MeshCube, r.Objects()[0].Mesh)

	half := s.CalculatePoses(500)["crate"]
	assert.Equal(t, trace.Triplet{X: 0, Y: 1, Z: 0}, half.T)
	assert.InDelta(t, math.Sqrt2/2, half.R.Z, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, half.R.W, 1e-9)
}

func TestOrbit(t *testing.T) {
	o := NewOrbit("moon", 4, mgl64.Vec3{0, 1, 0}, 2, 1, Rainbow)

	r := trace.New(0.1)
	o.Declare(r)
	objects := r.Objects()
	require.Len(t, objects, 4)
	assert.Equal(t, "moon-0", objects[0].Name)
	assert.Equal(t, trace.MeshCylinder, objects[0].Mesh)
	assert.NotEqual(t, objects[0].Material.Color, objects[2].Material.Color)

	poses := o.CalculatePoses(0)
	require.Len(t, poses, 4)
	assert.InDelta(t, 2, poses["moon-0"].T.X, 1e-9)
	assert.InDelta(t, 1, poses["moon-0"].T.Y, 1e-9)
	assert.InDelta(t, 2, poses["moon-1"].T.Z, 1e-9)
	for name, p := range poses {
		d := math.Hypot(p.T.X, p.T.Z)
		assert.InDelta(t, 2, d, 1e-9, name)
	}
}

func TestStill(t *testing.T) {
	pose := trace.NewPose(0, 1, 0, 0, 0, 0, 1)
	s := NewStill("egg", [3]float64{4, 2, 6}, pose, trace.White)

	r := trace.New(0.1)
	s.Declare(r)
	assert.Equal(t, trace.Triplet{X: 2, Y: 1, Z: 3}, r.Objects()[0].Scale)
	assert.Equal(t, pose, s.CalculatePoses(0)["egg"])
	assert.Equal(t, pose, s.CalculatePoses(12345)["egg"])
}

func TestGradientTable_GetColor(t *testing.T) {
	first := Rainbow.GetColor(0, 0.8, 0.6)
	assert.True(t, first.AlmostEqualRgb(colorful.Hcl(0, 0.8, 0.6)))

	mid := Rainbow.GetColor(0.56, 0.8, 0.6)
	assert.True(t, mid.AlmostEqualRgb(colorful.Hcl(180, 0.8, 0.6)))

	past := Rainbow.GetColor(2, 0.8, 0.6)
	assert.True(t, past.AlmostEqualRgb(Rainbow.GetColor(1, 0.8, 0.6)))
}

func TestGradientTable_Palette(t *testing.T) {
	p := Rainbow.Palette(3, 0.8, 0.6)
	require.Len(t, p, 3)
	for _, c := range p {
		assert.Equal(t, 1.0, c.A)
		for _, v := range []float64{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	assert.Len(t, Rainbow.Palette(1, 0.8, 0.6), 1)
}
