package raytracer

import "math"

// CullMode controls which side of a triangle is considered back-facing.
type CullMode int

const (
	CullNone CullMode = iota
	CullFrontFace
	CullBackFace
)

// Ray is a half-line origin+t*direction, valid for t in [TMin, TMax].
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewPrimaryRay builds a ray with the primary-ray tolerance window.
func NewPrimaryRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: 1e-4, TMax: math.Inf(1)}
}

// At returns the point origin + t*direction.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// HitRecord describes the closest intersection found so far along a ray.
// A fresh record starts with T=+Inf and DidHit=false.
type HitRecord struct {
	DidHit        bool
	T             float64
	Origin        Vec3
	Normal        Vec3
	MaterialIndex int
}

// NewHitRecord returns an empty record ready to be passed to a primitive's
// HitTest (Scene.ClosestHit starts from one of these).
func NewHitRecord() HitRecord {
	return HitRecord{T: math.Inf(1)}
}

// TryUpdate records the candidate hit if t falls in [ray.TMin, ray.TMax] and
// is strictly closer than anything already recorded. Returns true if it won.
func (h *HitRecord) TryUpdate(ray Ray, t float64, normal Vec3, materialIndex int) bool {
	if t < ray.TMin || t > ray.TMax {
		return false
	}
	if t >= h.T {
		return false
	}
	h.DidHit = true
	h.T = t
	h.Origin = ray.At(t)
	h.Normal = normal
	h.MaterialIndex = materialIndex
	return true
}
