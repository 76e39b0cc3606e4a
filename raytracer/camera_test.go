package raytracer

import "testing"

func TestCameraDefaultBasisLooksDownPlusZ(t *testing.T) {
	c := NewCamera(Vec3{}, 60)
	if !AreEqual(c.Forward, Vec3{0, 0, 1}, 1e-6) {
		t.Errorf("expected default forward (0,0,1), got %v", c.Forward)
	}
	if !FloatEqual(c.Right.Magnitude(), 1, 1e-6) {
		t.Errorf("expected unit right vector, got %v", c.Right)
	}
	if !FloatEqual(c.Up.Magnitude(), 1, 1e-6) {
		t.Errorf("expected unit up vector, got %v", c.Up)
	}
}

func TestCameraYawRotatesForwardTowardRight(t *testing.T) {
	c := NewCamera(Vec3{}, 60)
	c.Rotate(90*ToRadians, 0)
	c.CalculateCameraToWorld()
	if !AreEqual(c.Forward, Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("expected forward (1,0,0) after +90deg yaw, got %v", c.Forward)
	}
}
