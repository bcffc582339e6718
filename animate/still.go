package animate

import "github.com/matt-g-everett/posetrace/trace"

// A Still is an Animation that never moves. After the first frame every pose
// it submits is filtered out by the recorder.
type Still struct {
	name    string
	extents [3]float64
	pose    trace.Pose
	color   trace.RGBA
}

// NewStill creates a Still ellipsoid with the given full extents.
func NewStill(name string, extents [3]float64, pose trace.Pose, color trace.RGBA) *Still {
	s := new(Still)
	s.name = name
	s.extents = extents
	s.pose = pose
	s.color = color
	return s
}

// Declare adds the ellipsoid.
func (s *Still) Declare(r *trace.Recorder) {
	r.AddEllipsoid(s.name, s.extents[0], s.extents[1], s.extents[2], s.color)
}

// CalculatePoses always returns the same pose.
func (s *Still) CalculatePoses(runtimeMs int64) map[string]trace.Pose {
	return map[string]trace.Pose{s.name: s.pose}
}
