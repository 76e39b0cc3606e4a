package raytracer

import "math"

// Matrix4 is a 4x3+translation affine transform stored as three basis
// columns (right, up, forward) plus a translation, matching the camera's
// own cameraToWorld representation (see Camera.CalculateCameraToWorld).
type Matrix4 struct {
	Right, Up, Forward, Translation Vec3
}

// Identity returns the identity transform.
func Identity() Matrix4 {
	return Matrix4{
		Right:   Vec3{1, 0, 0},
		Up:      Vec3{0, 1, 0},
		Forward: Vec3{0, 0, 1},
	}
}

// CreateTranslation builds a pure-translation matrix.
func CreateTranslation(v Vec3) Matrix4 {
	m := Identity()
	m.Translation = v
	return m
}

// CreateScale builds a diagonal-scale matrix.
func CreateScale(v Vec3) Matrix4 {
	return Matrix4{
		Right:   Vec3{v.X, 0, 0},
		Up:      Vec3{0, v.Y, 0},
		Forward: Vec3{0, 0, v.Z},
	}
}

// CreateRotationX builds a rotation of theta radians around the X axis.
func CreateRotationX(theta float64) Matrix4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix4{
		Right:   Vec3{1, 0, 0},
		Up:      Vec3{0, c, s},
		Forward: Vec3{0, -s, c},
	}
}

// CreateRotationY builds a rotation of theta radians around the Y axis.
func CreateRotationY(theta float64) Matrix4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix4{
		Right:   Vec3{c, 0, -s},
		Up:      Vec3{0, 1, 0},
		Forward: Vec3{s, 0, c},
	}
}

// CreateRotationZ builds a rotation of theta radians around the Z axis.
func CreateRotationZ(theta float64) Matrix4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix4{
		Right:   Vec3{c, s, 0},
		Up:      Vec3{-s, c, 0},
		Forward: Vec3{0, 0, 1},
	}
}

// CreateRotation composes Rz*Ry*Rx, the convention the camera uses to turn
// (pitch,yaw,roll) into a forward basis (see 4.7 angle conventions).
func CreateRotation(pitch, yaw, roll float64) Matrix4 {
	return CreateRotationZ(roll).Multiply(CreateRotationY(yaw)).Multiply(CreateRotationX(pitch))
}

// TransformVector applies only the linear part (ignores translation): the
// basis vectors are the matrix's columns, so this is a weighted sum of them.
func (m Matrix4) TransformVector(v Vec3) Vec3 {
	return m.Right.Scale(v.X).Add(m.Up.Scale(v.Y)).Add(m.Forward.Scale(v.Z))
}

// TransformPoint applies the full affine transform (rotation/scale + translation).
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	return m.TransformVector(p).Add(m.Translation)
}

// Multiply returns m*other: other is applied first, then m.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	return Matrix4{
		Right:       m.TransformVector(other.Right),
		Up:          m.TransformVector(other.Up),
		Forward:     m.TransformVector(other.Forward),
		Translation: m.TransformPoint(other.Translation),
	}
}
