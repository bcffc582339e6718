package trace

// Declare appends a static object. Names are not deduplicated: declaring the
// same name twice leaves two entries.
func (r *Recorder) Declare(name string, kind ShapeKind, scale Triplet, color RGBA) {
	r.doc.Objects = append(r.doc.Objects, ObjectDecl{
		Name:     name,
		Mesh:     r.meshFor(kind),
		Scale:    scale,
		Material: Material{Color: color},
	})
}

// AddSphere declares a sphere of the given radius.
func (r *Recorder) AddSphere(name string, radius float64, color ...RGBA) {
	r.Declare(name, Sphere, Triplet{radius, radius, radius}, pick(color))
}

// AddEllipsoid declares an ellipsoid from its full extents along each axis.
// The scale written is the half extent.
func (r *Recorder) AddEllipsoid(name string, x, y, z float64, color ...RGBA) {
	r.Declare(name, Ellipsoid, Triplet{x / 2, y / 2, z / 2}, pick(color))
}

// AddBox declares a box with the given edge lengths.
func (r *Recorder) AddBox(name string, x, y, z float64, color ...RGBA) {
	r.Declare(name, Box, Triplet{x, y, z}, pick(color))
}

// AddCylinder declares a cylinder. Height runs along y.
func (r *Recorder) AddCylinder(name string, radius, height float64, color ...RGBA) {
	r.Declare(name, Cylinder, Triplet{radius, height, radius}, pick(color))
}

// Objects returns a copy of the declared objects in declaration order.
func (r *Recorder) Objects() []ObjectDecl {
	out := make([]ObjectDecl, len(r.doc.Objects))
	copy(out, r.doc.Objects)
	return out
}

func (r *Recorder) meshFor(kind ShapeKind) Mesh {
	switch kind {
	case Box:
		return MeshCube
	case Cylinder:
		return MeshCylinder
	case Ellipsoid:
		if r.distinctEllipsoid {
			return MeshEllipsoid
		}
		return MeshSphere
	default:
		return MeshSphere
	}
}

func pick(color []RGBA) RGBA {
	if len(color) == 0 {
		return White
	}
	return color[0]
}
