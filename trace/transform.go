package trace

import "github.com/go-gl/mathgl/mgl64"

// PoseFrom builds a Pose from a position vector and rotation quaternion.
func PoseFrom(position mgl64.Vec3, rotation mgl64.Quat) Pose {
	return Pose{
		T: Triplet{position.X(), position.Y(), position.Z()},
		R: Quat{rotation.V.X(), rotation.V.Y(), rotation.V.Z(), rotation.W},
	}
}

// Position returns the translation as a vector.
func (p Pose) Position() mgl64.Vec3 {
	return mgl64.Vec3{p.T.X, p.T.Y, p.T.Z}
}

// Rotation returns the rotation as an mgl64 quaternion, unnormalised.
func (p Pose) Rotation() mgl64.Quat {
	return mgl64.Quat{W: p.R.W, V: mgl64.Vec3{p.R.X, p.R.Y, p.R.Z}}
}
