package raytracer

import "math"

// Camera is a perspective camera with yaw/pitch orbit controls. Forward,
// Up, Right and CameraToWorld are derived state, recomputed by
// CalculateCameraToWorld whenever Origin/TotalYaw/TotalPitch change.
type Camera struct {
	Origin Vec3
	FOV    float64 // vertical field of view, degrees

	TotalYaw   float64
	TotalPitch float64

	Forward Vec3
	Up      Vec3
	Right   Vec3

	CameraToWorld Matrix4
}

// NewCamera builds a camera at origin looking down +Z.
func NewCamera(origin Vec3, fovDegrees float64) *Camera {
	c := &Camera{Origin: origin, FOV: fovDegrees}
	c.CalculateCameraToWorld()
	return c
}

// Rotate accumulates yaw/pitch from mouse deltas: +mouseX increases yaw,
// +mouseY increases pitch (4.7 angle conventions).
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.TotalYaw += deltaYaw
	c.TotalPitch += deltaPitch
}

// CalculateCameraToWorld rebuilds Forward/Right/Up and CameraToWorld from
// Origin/TotalYaw/TotalPitch. Call once per frame before rendering.
func (c *Camera) CalculateCameraToWorld() {
	rotation := CreateRotation(c.TotalPitch, c.TotalYaw, 0)
	c.Forward = rotation.TransformVector(Vec3{0, 0, 1}).Normalized()
	c.Right = Vec3{0, 1, 0}.Cross(c.Forward).Normalized()
	c.Up = c.Forward.Cross(c.Right).Normalized()
	c.CameraToWorld = Matrix4{
		Right:       c.Right,
		Up:          c.Up,
		Forward:     c.Forward,
		Translation: c.Origin,
	}
}

// fovScale returns tan(FOV*pi/360), the per-pixel-ray half-angle scale
// factor cached by Renderer.SetScene.
func (c *Camera) fovScale() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}
