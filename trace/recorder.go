// Package trace records scene declarations and per-frame entity poses into a
// document that external viewers can replay.
//
// A Recorder is owned by a single producer. Callers that feed it from more
// than one goroutine must serialise access themselves.
package trace

// A Recorder accumulates a trace Document.
type Recorder struct {
	doc       Document
	lastPose  map[string]Pose
	tolerance Tolerance

	distinctEllipsoid bool
}

// An Option configures a Recorder.
type Option func(*Recorder)

// WithName sets the optional top-level document name.
func WithName(name string) Option {
	return func(r *Recorder) {
		r.doc.Name = name
	}
}

// WithTolerance replaces DefaultTolerance for RecordPose and AddFrame.
func WithTolerance(tol Tolerance) Option {
	return func(r *Recorder) {
		r.tolerance = tol
	}
}

// WithDistinctEllipsoidMesh makes ellipsoids use the "ellipsoid" mesh.
// By default they are written as "sphere" meshes with a half-extent scale,
// which is what existing viewers of the format expect.
func WithDistinctEllipsoidMesh() Option {
	return func(r *Recorder) {
		r.distinctEllipsoid = true
	}
}

// New creates a Recorder for frames spaced timeStep seconds apart.
func New(timeStep float64, opts ...Option) *Recorder {
	r := new(Recorder)
	r.doc.TimeStep = timeStep
	r.doc.Objects = make([]ObjectDecl, 0)
	r.doc.Frames = make([]Frame, 0)
	r.lastPose = make(map[string]Pose)
	r.tolerance = DefaultTolerance

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Name returns the document name, empty if none was set.
func (r *Recorder) Name() string {
	return r.doc.Name
}

// TimeStep returns the spacing between frames in seconds.
func (r *Recorder) TimeStep() float64 {
	return r.doc.TimeStep
}

// Tolerance returns the thresholds used by RecordPose.
func (r *Recorder) Tolerance() Tolerance {
	return r.tolerance
}

// StartFrame appends an empty frame and makes it current.
func (r *Recorder) StartFrame() {
	r.doc.Frames = append(r.doc.Frames, make(Frame))
}

// RecordPose writes pose into the current frame if it differs enough from the
// last pose recorded for name. It reports whether the pose was recorded.
//
// Recording before any StartFrame call creates the first frame implicitly.
func (r *Recorder) RecordPose(name string, pose Pose) bool {
	return r.RecordPoseWithin(name, pose, r.tolerance)
}

// RecordPoseWithin is RecordPose with explicit tolerances for this call only.
func (r *Recorder) RecordPoseWithin(name string, pose Pose, tol Tolerance) bool {
	if !r.Significant(name, pose, tol) {
		return false
	}

	if len(r.doc.Frames) == 0 {
		r.StartFrame()
	}

	r.doc.Frames[len(r.doc.Frames)-1][name] = pose
	r.lastPose[name] = pose
	return true
}

// AddFrame starts a new frame and then records pose into it.
// The frame is appended even when the pose is suppressed.
func (r *Recorder) AddFrame(name string, pose Pose) bool {
	r.StartFrame()
	return r.RecordPose(name, pose)
}

// Len returns the number of frames.
func (r *Recorder) Len() int {
	return len(r.doc.Frames)
}

// Frame returns a copy of frame i. It panics if i is out of range.
func (r *Recorder) Frame(i int) Frame {
	return r.doc.Frames[i].clone()
}

// LastPose returns the most recently recorded pose for name.
// Suppressed submissions never show up here.
func (r *Recorder) LastPose(name string) (Pose, bool) {
	p, ok := r.lastPose[name]
	return p, ok
}

// Snapshot returns a deep copy of the document in its current state.
func (r *Recorder) Snapshot() Document {
	return r.doc.clone()
}

func (f Frame) clone() Frame {
	out := make(Frame, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (d Document) clone() Document {
	out := Document{
		Name:     d.Name,
		TimeStep: d.TimeStep,
		Objects:  make([]ObjectDecl, len(d.Objects)),
		Frames:   make([]Frame, len(d.Frames)),
	}
	copy(out.Objects, d.Objects)
	for i, f := range d.Frames {
		out.Frames[i] = f.clone()
	}
	return out
}
