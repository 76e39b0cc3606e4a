package raytracer

// Scene is a flat container of primitives, meshes, lights and materials.
// ClosestHit/AnyHit walk the primitive lists in a fixed order (spheres,
// planes, triangles, meshes) so results are deterministic regardless of
// build order.
type Scene struct {
	Spheres   []Sphere
	Planes    []Plane
	Triangles []Triangle
	Meshes    []*TriangleMesh

	Lights    []Light
	Materials []Material

	Camera *Camera

	// Updater, when set, is invoked once per frame by Update(dt); demo
	// scenes install a closure here to animate meshes/spheres.
	Updater func(s *Scene, dt float64)

	totalTime float64
}

// ClosestHit walks every primitive and returns the nearest intersection
// within ray's [TMin, TMax] window.
func (s *Scene) ClosestHit(ray Ray) HitRecord {
	hit := NewHitRecord()
	for i := range s.Spheres {
		s.Spheres[i].HitTest(ray, &hit)
	}
	for i := range s.Planes {
		s.Planes[i].HitTest(ray, &hit)
	}
	for i := range s.Triangles {
		s.Triangles[i].HitTest(ray, &hit)
	}
	for _, m := range s.Meshes {
		m.HitTest(ray, &hit)
	}
	return hit
}

// AnyHit returns true as soon as any primitive intersects ray within its
// [TMin, TMax] window; used for shadow rays.
func (s *Scene) AnyHit(ray Ray) bool {
	for i := range s.Spheres {
		if s.Spheres[i].DoesHit(ray) {
			return true
		}
	}
	for i := range s.Planes {
		if s.Planes[i].DoesHit(ray) {
			return true
		}
	}
	for i := range s.Triangles {
		if s.Triangles[i].DoesHit(ray) {
			return true
		}
	}
	for _, m := range s.Meshes {
		if m.DoesHit(ray) {
			return true
		}
	}
	return false
}

// HasClearLineOfSight is a convenience query over AnyHit: true when nothing
// occludes the segment from..to. Not part of the per-pixel shading path;
// useful for demo/AI code and tests, grounded on the teacher's
// Scene.LineOfSight.
func (s *Scene) HasClearLineOfSight(from, to Vec3) bool {
	toTarget := to.Sub(from)
	distance := toTarget.Magnitude()
	if distance < 1e-9 {
		return true
	}
	ray := Ray{Origin: from, Direction: toTarget.Scale(1 / distance), TMin: 1e-4, TMax: distance - 1e-3}
	return !s.AnyHit(ray)
}

// Update advances scene animation by dt seconds. The default is a no-op;
// demo scenes install Updater to rotate meshes or move spheres per frame.
func (s *Scene) Update(dt float64) {
	s.totalTime += dt
	if s.Updater != nil {
		s.Updater(s, dt)
	}
}

// TotalTime returns the accumulated simulation time since the scene began.
func (s *Scene) TotalTime() float64 {
	return s.totalTime
}
