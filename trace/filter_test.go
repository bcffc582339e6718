package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoved(t *testing.T) {
	tol := DefaultTolerance

	tests := []struct {
		name string
		next Pose
		want bool
	}{
		{"identical", origin, false},
		{"below on every component", NewPose(0.009, -0.009, 0.005, 0.009, -0.009, 0.009, 0.991), false},
		{"translation x", NewPose(0.02, 0, 0, 0, 0, 0, 1), true},
		{"translation y negative", NewPose(0, -0.02, 0, 0, 0, 0, 1), true},
		{"translation z", NewPose(0, 0, 0.011, 0, 0, 0, 1), true},
		{"rotation x", NewPose(0, 0, 0, 0.02, 0, 0, 1), true},
		{"rotation y", NewPose(0, 0, 0, 0, 0.02, 0, 1), true},
		{"rotation z", NewPose(0, 0, 0, 0, 0, -0.02, 1), true},
		{"rotation w", NewPose(0, 0, 0, 0, 0, 0, 0.98), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Moved(origin, tt.next, tol))
		})
	}
}

// TestMoved_PerComponent tests that the check is per axis, not a distance.
func TestMoved_PerComponent(t *testing.T) {
	// Euclidean length 0.0173 exceeds 0.01, but no single axis does.
	next := NewPose(0.01, 0.01, 0.01, 0, 0, 0, 1)
	assert.False(t, Moved(origin, next, DefaultTolerance))
}

// TestMoved_SeparateTolerances tests that translation and rotation use their own limits.
func TestMoved_SeparateTolerances(t *testing.T) {
	tol := Tolerance{Translation: 1, Rotation: 0.001}

	assert.False(t, Moved(origin, NewPose(0.5, 0, 0, 0, 0, 0, 1), tol))
	assert.True(t, Moved(origin, NewPose(0, 0, 0, 0.002, 0, 0, 1), tol))
}

// TestSignificant_Pure tests that querying the filter never records anything.
func TestSignificant_Pure(t *testing.T) {
	r := New(0.1)
	r.StartFrame()

	assert.True(t, r.Significant("ball", origin, DefaultTolerance))
	assert.Empty(t, r.Frame(0))
	_, ok := r.LastPose("ball")
	assert.False(t, ok)

	r.RecordPose("ball", origin)
	assert.False(t, r.Significant("ball", origin, DefaultTolerance))
	assert.True(t, r.Significant("ball", NewPose(1, 0, 0, 0, 0, 0, 1), DefaultTolerance))
}
