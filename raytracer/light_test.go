package raytracer

import (
	"math"
	"testing"
)

func TestDirectionalRadianceIsPositionInvariant(t *testing.T) {
	l := NewDirectionalLight(Vec3{0, -1, 0}, White, 2)
	a := l.Radiance(Vec3{0, 0, 0})
	b := l.Radiance(Vec3{100, -50, 30})
	if a != b {
		t.Errorf("expected directional radiance independent of position, got %v vs %v", a, b)
	}
}

func TestPointRadianceDecaysWithSquaredDistance(t *testing.T) {
	l := NewPointLight(Vec3{0, 0, 0}, White, 1)
	near := l.Radiance(Vec3{1, 0, 0}).R
	far := l.Radiance(Vec3{2, 0, 0}).R
	if !FloatEqual(near/far, 4, 1e-6) {
		t.Errorf("expected 1/d^2 falloff (ratio 4 at 2x distance), got ratio %v", near/far)
	}
}

func TestDirectionalDirectionToLightIsFixedNotZero(t *testing.T) {
	l := NewDirectionalLight(Vec3{0, -1, 0}, White, 1)
	dir, dist := l.DirectionToLight(Vec3{3, 3, 3})
	if dir == (Vec3{}) {
		t.Fatal("expected nonzero direction to light for a directional light")
	}
	if !AreEqual(dir, Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("expected direction to light = -Direction = (0,1,0), got %v", dir)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("expected +Inf distance for directional light, got %v", dist)
	}
}
