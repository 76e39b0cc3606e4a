package raytracer

// AABB is an axis-aligned bounding box, grounded on the teacher's slab-test
// bounding volume (bounding_volumes.go).
type AABB struct {
	Min, Max Vec3
}

// NewAABBFromPoints computes the tightest box containing every point.
func NewAABBFromPoints(points []Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Min(min, p)
		max = Max(max, p)
	}
	return AABB{Min: min, Max: max}
}

// corners returns the 8 corners of the box.
func (b AABB) corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// Transformed returns the AABB of b's 8 corners pushed through the given
// transform — not a re-fit of the original extents, just a re-bound of the
// transformed corners (may be looser than optimal under rotation).
func (b AABB) Transformed(m Matrix4) AABB {
	corners := b.corners()
	transformed := make([]Vec3, 0, 8)
	for _, c := range corners {
		transformed = append(transformed, m.TransformPoint(c))
	}
	return NewAABBFromPoints(transformed)
}

// IntersectsRay performs the 3-axis slab test, returning whether ray hits
// the box within its own [TMin, TMax] window.
func (b AABB) IntersectsRay(ray Ray) bool {
	tMin, tMax := ray.TMin, ray.TMax
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(ray, b, axis)
		if FloatEqual(dir, 0, 1e-12) {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		inv := 1.0 / dir
		t0 := (lo - origin) * inv
		t1 := (hi - origin) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= 0 || tMax < tMin {
			return false
		}
	}
	return true
}

func axisComponents(ray Ray, b AABB, axis int) (origin, dir, lo, hi float64) {
	switch axis {
	case 0:
		return ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
	case 1:
		return ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
	default:
		return ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
	}
}

// TriangleMesh is a set of triangles sharing a single material and cull
// mode, transformed as a rigid/scaled body (scale, then rotate, then
// translate: M = T*R*S in Multiply's notation) with a cached world
// AABB used to reject rays cheaply before testing every triangle.
type TriangleMesh struct {
	LocalPositions []Vec3
	Indices        []int
	CullMode       CullMode
	MaterialIndex  int

	Scale    Vec3
	Rotation Matrix4 // pure rotation, composed from CreateRotation / RotateY etc.
	Position Vec3

	localAABB AABB

	transformedPositions []Vec3
	worldAABB            AABB
	model                Matrix4
}

// NewTriangleMesh builds a mesh from flat position data and 0-based triangle
// indices (3 per face), with an identity transform.
func NewTriangleMesh(positions []Vec3, indices []int, cullMode CullMode, materialIndex int) *TriangleMesh {
	m := &TriangleMesh{
		LocalPositions: positions,
		Indices:        indices,
		CullMode:       cullMode,
		MaterialIndex:  materialIndex,
		Scale:          Vec3{1, 1, 1},
		Rotation:       Identity(),
	}
	m.localAABB = NewAABBFromPoints(positions)
	m.UpdateTransforms()
	return m
}

// UpdateTransforms recomputes the model matrix (M = T*R*S), the transformed
// vertex positions and the cached world AABB. Call after changing Scale,
// Rotation or Position.
func (m *TriangleMesh) UpdateTransforms() {
	s := CreateScale(m.Scale)
	t := CreateTranslation(m.Position)
	m.model = t.Multiply(m.Rotation).Multiply(s)

	if cap(m.transformedPositions) < len(m.LocalPositions) {
		m.transformedPositions = make([]Vec3, len(m.LocalPositions))
	}
	m.transformedPositions = m.transformedPositions[:len(m.LocalPositions)]
	for i, p := range m.LocalPositions {
		m.transformedPositions[i] = m.model.TransformPoint(p)
	}
	m.worldAABB = m.localAABB.Transformed(m.model)
}

// RotateY sets the mesh's rotation to a pure yaw of theta radians and
// refreshes the cached transform (the animated demo scenes do this).
func (m *TriangleMesh) RotateY(theta float64) {
	m.Rotation = CreateRotationY(theta)
	m.UpdateTransforms()
}

func (m *TriangleMesh) triangle(faceIdx int) Triangle {
	i0, i1, i2 := m.Indices[faceIdx*3], m.Indices[faceIdx*3+1], m.Indices[faceIdx*3+2]
	return NewTriangle(m.transformedPositions[i0], m.transformedPositions[i1], m.transformedPositions[i2], m.CullMode, m.MaterialIndex)
}

func (m *TriangleMesh) faceCount() int {
	return len(m.Indices) / 3
}

// HitTest performs the world-AABB slab test first, then a closest-hit
// query over every transformed triangle.
func (m *TriangleMesh) HitTest(ray Ray, hit *HitRecord) bool {
	if !m.worldAABB.IntersectsRay(ray) {
		return false
	}
	found := false
	for i := 0; i < m.faceCount(); i++ {
		if m.triangle(i).HitTest(ray, hit) {
			found = true
		}
	}
	return found
}

// DoesHit performs the world-AABB slab test first, then an any-hit query,
// short-circuiting on the first triangle hit.
func (m *TriangleMesh) DoesHit(ray Ray) bool {
	if !m.worldAABB.IntersectsRay(ray) {
		return false
	}
	for i := 0; i < m.faceCount(); i++ {
		if m.triangle(i).DoesHit(ray) {
			return true
		}
	}
	return false
}

// WorldAABB exposes the cached world-space bounding box, mainly for tests.
func (m *TriangleMesh) WorldAABB() AABB {
	return m.worldAABB
}

// ContainsAllTransformed reports whether the world AABB bounds every
// transformed vertex, used to check the mesh invariant in tests.
func (m *TriangleMesh) ContainsAllTransformed() bool {
	for _, p := range m.transformedPositions {
		if p.X < m.worldAABB.Min.X-1e-9 || p.X > m.worldAABB.Max.X+1e-9 {
			return false
		}
		if p.Y < m.worldAABB.Min.Y-1e-9 || p.Y > m.worldAABB.Max.Y+1e-9 {
			return false
		}
		if p.Z < m.worldAABB.Min.Z-1e-9 || p.Z > m.worldAABB.Max.Z+1e-9 {
			return false
		}
	}
	return true
}
