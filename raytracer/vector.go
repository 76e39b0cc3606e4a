package raytracer

import "math"

// ToRadians converts degrees to radians.
const ToRadians = math.Pi / 180.0

// Epsilon is a general-purpose comparison tolerance. AreEqual and FloatEqual
// take their tolerance as an argument rather than reading this constant.
const Epsilon = 1e-4

// Vec3 is a right-handed, Y-up, +Z-forward 3-component vector used for both
// points and directions.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a vector from its components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and other.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// SqrMagnitude returns the squared length of v, avoiding the sqrt.
func (v Vec3) SqrMagnitude() float64 {
	return v.Dot(v)
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Normalized returns a unit-length copy of v. The zero vector maps to itself.
func (v Vec3) Normalized() Vec3 {
	length := v.Magnitude()
	if length < 1e-10 {
		return v
	}
	inv := 1.0 / length
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Normalize normalizes v in place and returns the length it had before
// normalization.
func (v *Vec3) Normalize() float64 {
	length := v.Magnitude()
	if length < 1e-10 {
		return length
	}
	inv := 1.0 / length
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return length
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// Reflect reflects incoming direction i around normal n (n must be unit).
func Reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Scale(2 * i.Dot(n)))
}

// AreEqual reports whether a and b are within eps of each other on every axis.
func AreEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// FloatEqual reports whether a and b are within eps of each other.
func FloatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// clamp constrains value to [lo, hi].
func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
