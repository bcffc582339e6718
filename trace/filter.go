package trace

import "math"

// Significant reports whether pose would be recorded for name under tol.
// It has no side effects.
func (r *Recorder) Significant(name string, pose Pose, tol Tolerance) bool {
	last, ok := r.lastPose[name]
	if !ok {
		return true
	}
	return Moved(last, pose, tol)
}

// Moved reports whether any translation axis of next differs from last by
// more than tol.Translation, or any quaternion component by more than
// tol.Rotation. Components are tested independently.
func Moved(last, next Pose, tol Tolerance) bool {
	return exceeds(last.T.X, next.T.X, tol.Translation) ||
		exceeds(last.T.Y, next.T.Y, tol.Translation) ||
		exceeds(last.T.Z, next.T.Z, tol.Translation) ||
		exceeds(last.R.X, next.R.X, tol.Rotation) ||
		exceeds(last.R.Y, next.R.Y, tol.Rotation) ||
		exceeds(last.R.Z, next.R.Z, tol.Rotation) ||
		exceeds(last.R.W, next.R.W, tol.Rotation)
}

func exceeds(a, b, tol float64) bool {
	return math.Abs(b-a) > tol
}
