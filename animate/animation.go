// Package animate produces entity poses frame by frame and feeds them into a
// trace.Recorder.
package animate

import "github.com/matt-g-everett/posetrace/trace"

// An Animation implements a way to move a set of scene objects.
type Animation interface {
	// Declare adds the objects the animation moves. It is called once, before
	// the first frame.
	Declare(r *trace.Recorder)
	// CalculatePoses returns the pose of every entity at runtimeMs.
	CalculatePoses(runtimeMs int64) map[string]trace.Pose
}
