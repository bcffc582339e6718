package trace

import (
	"encoding/json"
	"fmt"
)

// Triplet is an (x, y, z) value used for scales and translations.
type Triplet struct {
	X, Y, Z float64
}

// MarshalJSON encodes a Triplet as [x, y, z].
func (t Triplet) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{t.X, t.Y, t.Z})
}

// UnmarshalJSON decodes a Triplet from [x, y, z].
func (t *Triplet) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("triplet: want 3 values, got %d", len(v))
	}
	t.X, t.Y, t.Z = v[0], v[1], v[2]
	return nil
}

// RGBA is a colour with components nominally in [0, 1]. Nothing clamps them.
type RGBA struct {
	R, G, B, A float64
}

// White is the colour used when a declaration does not supply one.
var White = RGBA{1, 1, 1, 1}

func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.R, c.G, c.B, c.A})
}

func (c *RGBA) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("rgba: want 4 values, got %d", len(v))
	}
	c.R, c.G, c.B, c.A = v[0], v[1], v[2], v[3]
	return nil
}

// Quat is a rotation quaternion. It is stored as given, never normalised.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the no-rotation quaternion.
var Identity = Quat{0, 0, 0, 1}

func (q Quat) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{q.X, q.Y, q.Z, q.W})
}

func (q *Quat) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("quat: want 4 values, got %d", len(v))
	}
	q.X, q.Y, q.Z, q.W = v[0], v[1], v[2], v[3]
	return nil
}

// Pose is the placement of an entity within a frame.
type Pose struct {
	T Triplet `json:"t"`
	R Quat    `json:"r"`
}

// NewPose builds a Pose from raw translation and rotation components.
func NewPose(x, y, z, qx, qy, qz, qw float64) Pose {
	return Pose{
		T: Triplet{x, y, z},
		R: Quat{qx, qy, qz, qw},
	}
}

// ShapeKind identifies the primitive a declared object is drawn with.
type ShapeKind int

const (
	Sphere ShapeKind = iota
	Ellipsoid
	Box
	Cylinder
)

func (k ShapeKind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Ellipsoid:
		return "ellipsoid"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// ParseShapeKind maps a shape name, as written in configuration files, to a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "sphere":
		return Sphere, nil
	case "ellipsoid":
		return Ellipsoid, nil
	case "box", "cube":
		return Box, nil
	case "cylinder":
		return Cylinder, nil
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// Mesh is the renderer-facing name written to the "mesh" field of an object.
type Mesh string

const (
	MeshSphere    Mesh = "sphere"
	MeshCube      Mesh = "cube"
	MeshCylinder  Mesh = "cylinder"
	MeshEllipsoid Mesh = "ellipsoid"
)

// Material carries the rendering attributes of an object.
type Material struct {
	Color RGBA `json:"color"`
}

// ObjectDecl is a static object declared before animation begins.
type ObjectDecl struct {
	Name     string   `json:"name"`
	Mesh     Mesh     `json:"mesh"`
	Scale    Triplet  `json:"scale"`
	Material Material `json:"material"`
}

// Frame maps entity names to the poses recorded for them in one time slice.
type Frame map[string]Pose

// Document is the complete trace: static objects plus the frame sequence.
type Document struct {
	Name     string       `json:"name,omitempty"`
	TimeStep float64      `json:"timeStep"`
	Objects  []ObjectDecl `json:"objects"`
	Frames   []Frame      `json:"frames"`
}

// Tolerance holds the per-component thresholds of the significance filter.
type Tolerance struct {
	Translation float64
	Rotation    float64
}

// DefaultTolerance is applied by RecordPose unless the recorder is configured otherwise.
var DefaultTolerance = Tolerance{Translation: 0.01, Rotation: 0.01}
