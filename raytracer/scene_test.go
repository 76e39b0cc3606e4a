package raytracer

import "testing"

func TestClosestHitPicksNearerOfTwoSpheres(t *testing.T) {
	s := &Scene{
		Spheres: []Sphere{
			{Center: Vec3{0, 0, 10}, Radius: 1, MaterialIndex: 0},
			{Center: Vec3{0, 0, 5}, Radius: 1, MaterialIndex: 1},
		},
	}
	ray := NewPrimaryRay(Vec3{0, 0, 0}, Vec3{0, 0, 1})
	hit := s.ClosestHit(ray)
	if !hit.DidHit {
		t.Fatal("expected a hit")
	}
	if hit.MaterialIndex != 1 {
		t.Errorf("expected to hit the nearer sphere (material 1), got material %d at t=%v", hit.MaterialIndex, hit.T)
	}
}

func TestAnyHitTrueImpliesSomeShapeHits(t *testing.T) {
	s := &Scene{
		Planes: []Plane{{Point: Vec3{0, -1, 0}, Normal: Vec3{0, 1, 0}}},
	}
	ray := Ray{Origin: Vec3{0, 5, 0}, Direction: Vec3{0, -1, 0}, TMin: 1e-4, TMax: 1e6}
	if !s.AnyHit(ray) {
		t.Fatal("expected a hit against the ground plane")
	}
	if !s.Planes[0].DoesHit(ray) {
		t.Error("AnyHit reported true but the underlying plane test disagrees")
	}
}

func TestHasClearLineOfSightBlockedBySphere(t *testing.T) {
	s := &Scene{
		Spheres: []Sphere{{Center: Vec3{0, 0, 5}, Radius: 1, MaterialIndex: 0}},
	}
	if s.HasClearLineOfSight(Vec3{0, 0, 0}, Vec3{0, 0, 10}) {
		t.Error("expected line of sight to be blocked by the intervening sphere")
	}
	if !s.HasClearLineOfSight(Vec3{0, 0, 0}, Vec3{5, 0, 0}) {
		t.Error("expected clear line of sight away from the sphere")
	}
}

func TestUpdateInvokesUpdater(t *testing.T) {
	called := false
	s := &Scene{Updater: func(s *Scene, dt float64) { called = true }}
	s.Update(1.0 / 60)
	if !called {
		t.Error("expected Updater to be invoked")
	}
	if !FloatEqual(s.TotalTime(), 1.0/60, 1e-9) {
		t.Errorf("expected total time to accumulate, got %v", s.TotalTime())
	}
}
