package raytracer

import (
	"math"
	"testing"
)

func TestPlaneMiss(t *testing.T) {
	p := Plane{Point: Vec3{0, -1, 0}, Normal: Vec3{0, 1, 0}}
	ray := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 1, 0}, TMin: 1e-4, TMax: math.Inf(1)}
	hit := NewHitRecord()
	if p.HitTest(ray, &hit) {
		t.Fatalf("expected miss (t=-1 < tmin), got hit at t=%v", hit.T)
	}
}

func TestSphereHitAtOrigin(t *testing.T) {
	s := Sphere{Center: Vec3{0, 0, 4}, Radius: 1, MaterialIndex: 0}
	ray := NewPrimaryRay(Vec3{0, 0, 0}, Vec3{0, 0, 1})
	hit := NewHitRecord()
	if !s.HitTest(ray, &hit) {
		t.Fatal("expected hit")
	}
	if !FloatEqual(hit.T, 3, 1e-6) {
		t.Errorf("expected t close to 3 (near surface), got %v", hit.T)
	}
	if !FloatEqual(hit.Normal.Magnitude(), 1, 1e-4) {
		t.Errorf("expected unit normal, got magnitude %v", hit.Normal.Magnitude())
	}
}

// TestTriangleCullMatrix exercises the triangle cull-mode table from the
// spec: the same geometry and ray must produce DIFFERENT accept/reject
// decisions for closest-hit vs any-hit under FrontFace/BackFace culling.
func TestTriangleCullMatrix(t *testing.T) {
	v0 := Vec3{-1, 0, 1}
	v1 := Vec3{1, 0, 1}
	v2 := Vec3{0, 1, 1}
	ray := Ray{Origin: Vec3{0, 0.3, 0}, Direction: Vec3{0, 0, 1}, TMin: 1e-4, TMax: math.Inf(1)}

	none := NewTriangle(v0, v1, v2, CullNone, 0)
	if !AreEqual(none.Normal, Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("expected normal (0,0,-1), got %v", none.Normal)
	}

	backFace := NewTriangle(v0, v1, v2, CullBackFace, 0)
	hit := NewHitRecord()
	if !backFace.HitTest(ray, &hit) {
		t.Error("BackFaceCulling primary: expected hit (n.d=-1 < 0, not rejected)")
	}
	if backFace.DoesHit(ray) {
		t.Error("BackFaceCulling shadow: expected miss (n.d=-1 < 0, rejected)")
	}

	frontFace := NewTriangle(v0, v1, v2, CullFrontFace, 0)
	hit2 := NewHitRecord()
	if frontFace.HitTest(ray, &hit2) {
		t.Error("FrontFaceCulling primary: expected miss (n.d=-1 < 0, rejected)")
	}
	if !frontFace.DoesHit(ray) {
		t.Error("FrontFaceCulling shadow: expected hit (n.d=-1 < 0, not rejected)")
	}
}

func TestSphereDoesHitAgreesWithHitTest(t *testing.T) {
	s := Sphere{Center: Vec3{0, 0, 4}, Radius: 1, MaterialIndex: 0}
	ray := NewPrimaryRay(Vec3{0, 0, 0}, Vec3{0, 0, 1})
	hit := NewHitRecord()
	gotHit := s.HitTest(ray, &hit)
	gotAny := s.DoesHit(ray)
	if gotHit != gotAny {
		t.Errorf("HitTest=%v DoesHit=%v should agree for an unoccluded sphere", gotHit, gotAny)
	}
}
