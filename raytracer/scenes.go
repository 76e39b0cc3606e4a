package raytracer

import "math"

// scene builders for the seven demo scenes enumerated in the external
// interfaces (the scene a cmd/raytracer run renders is picked by its -scene
// flag, default w1), grounded on the
// teacher's scene_examples.go declarative-builder-function style rather
// than its inheritance-based Initialize/Update overrides (see 9. Design
// Notes: "Scene as variant-of-scenes").

// quadMesh builds a single 2-triangle quad centered at the origin in the
// XY plane, facing -Z.
func quadMesh(halfExtent float64, cullMode CullMode, materialIndex int) *TriangleMesh {
	positions := []Vec3{
		{-halfExtent, -halfExtent, 0},
		{halfExtent, -halfExtent, 0},
		{halfExtent, halfExtent, 0},
		{-halfExtent, halfExtent, 0},
	}
	indices := []int{0, 1, 2, 0, 2, 3}
	return NewTriangleMesh(positions, indices, cullMode, materialIndex)
}

// roomPlanes returns the 5 planes (floor, ceiling, back, left, right) of an
// open box of the given half-size, all sharing materialIndex.
func roomPlanes(halfSize float64, materialIndex int) []Plane {
	return []Plane{
		{Point: Vec3{0, -halfSize, 0}, Normal: Vec3{0, 1, 0}, MaterialIndex: materialIndex},
		{Point: Vec3{0, halfSize, 0}, Normal: Vec3{0, -1, 0}, MaterialIndex: materialIndex},
		{Point: Vec3{0, 0, halfSize + 5}, Normal: Vec3{0, 0, -1}, MaterialIndex: materialIndex},
		{Point: Vec3{-halfSize, 0, 0}, Normal: Vec3{1, 0, 0}, MaterialIndex: materialIndex},
		{Point: Vec3{halfSize, 0, 0}, Normal: Vec3{-1, 0, 0}, MaterialIndex: materialIndex},
	}
}

// BuildW1 is the smallest scene: a plane box and two spheres, all solid
// colors, no lights. The renderer shades only through its per-light loop,
// so with no lights every pixel stays black (spec scenario 1's base case):
// the scene exercises ClosestHit, while no shadow rays are cast and the
// SolidColor materials are never evaluated.
func BuildW1() *Scene {
	s := &Scene{
		Camera: NewCamera(Vec3{0, 0, 0}, 90),
		Materials: []Material{
			NewSolidColorMaterial(ColorRGB{R: 0.6, G: 0.6, B: 0.6}), // default, index 0
			NewSolidColorMaterial(ColorRGB{R: 1, G: 0, B: 0}),
			NewSolidColorMaterial(ColorRGB{R: 0, G: 0, B: 1}),
		},
	}
	s.Planes = roomPlanes(5, 0)
	s.Spheres = []Sphere{
		{Center: Vec3{-1.5, 0, 6}, Radius: 1, MaterialIndex: 1},
		{Center: Vec3{1.5, 0, 6}, Radius: 1, MaterialIndex: 2},
	}
	return s
}

// BuildW2 is a lit room: the W1 box with 6 differently-shaded spheres and
// a single point light, exercising Lambert/LambertPhong shading and
// shadows.
func BuildW2() *Scene {
	s := &Scene{
		Camera: NewCamera(Vec3{0, 0, 0}, 90),
		Materials: []Material{
			NewLambertMaterial(ColorRGB{R: 0.6, G: 0.6, B: 0.6}, 1),
			NewLambertMaterial(ColorRGB{R: 0.9, G: 0.2, B: 0.2}, 1),
			NewLambertMaterial(ColorRGB{R: 0.2, G: 0.9, B: 0.2}, 1),
			NewLambertMaterial(ColorRGB{R: 0.2, G: 0.2, B: 0.9}, 1),
			NewLambertPhongMaterial(ColorRGB{R: 0.8, G: 0.8, B: 0.2}, 0.6, 0.4, 32),
			NewLambertPhongMaterial(ColorRGB{R: 0.8, G: 0.2, B: 0.8}, 0.6, 0.4, 16),
			NewLambertPhongMaterial(ColorRGB{R: 0.2, G: 0.8, B: 0.8}, 0.5, 0.5, 64),
		},
		Lights: []Light{
			NewPointLight(Vec3{0, 4, 4}, White, 40),
		},
	}
	s.Planes = roomPlanes(5, 0)
	spacing := 2.2
	for i := 0; i < 6; i++ {
		x := (float64(i%3) - 1) * spacing
		z := 5 + float64(i/3)*spacing
		s.Spheres = append(s.Spheres, Sphere{Center: Vec3{x, -1, z}, Radius: 0.9, MaterialIndex: i + 1})
	}
	return s
}

// BuildW3 is a Cook-Torrance material showcase: a grid of spheres sweeping
// metalness (columns) and roughness (rows), lit by three lights (two point,
// one directional) so both near and grazing Fresnel behavior are visible.
func BuildW3() *Scene {
	const rows, cols = 4, 4
	materials := []Material{NewSolidColorMaterial(Black)}
	for r := 0; r < rows; r++ {
		roughness := 0.05 + float64(r)/float64(rows-1)*0.9
		for c := 0; c < cols; c++ {
			metalness := float64(c) / float64(cols-1)
			materials = append(materials, NewCookTorranceMaterial(ColorRGB{R: 0.9, G: 0.7, B: 0.3}, metalness, roughness))
		}
	}

	s := &Scene{
		Camera:    NewCamera(Vec3{0, 0, -4}, 60),
		Materials: materials,
		Lights: []Light{
			NewPointLight(Vec3{-4, 4, -6}, White, 60),
			NewPointLight(Vec3{4, 4, -6}, ColorRGB{R: 0.6, G: 0.7, B: 1}, 50),
			NewDirectionalLight(Vec3{0, -1, 1}, ColorRGB{R: 1, G: 0.9, B: 0.8}, 1.5),
		},
	}
	spacing := 2.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := (float64(c) - float64(cols-1)/2) * spacing
			y := (float64(r) - float64(rows-1)/2) * spacing
			s.Spheres = append(s.Spheres, Sphere{Center: Vec3{x, y, 8}, Radius: 0.8, MaterialIndex: r*cols + c + 1})
		}
	}
	return s
}

// BuildW4Test is the minimal mesh scene: one 2-triangle quad that spins
// about Y, exercising TriangleMesh's transform cache and world-AABB update
// every frame.
func BuildW4Test() *Scene {
	s := &Scene{
		Camera:    NewCamera(Vec3{0, 0, 0}, 60),
		Materials: []Material{NewLambertMaterial(ColorRGB{R: 0.8, G: 0.8, B: 0.8}, 1)},
		Lights:    []Light{NewDirectionalLight(Vec3{0, -0.3, 1}, White, 2)},
	}
	quad := quadMesh(1.5, CullNone, 0)
	quad.Position = Vec3{0, 0, 6}
	quad.UpdateTransforms()
	s.Meshes = []*TriangleMesh{quad}
	s.Updater = func(sc *Scene, dt float64) {
		sc.Meshes[0].RotateY(math.Pi / 2 * sc.TotalTime())
	}
	return s
}

// BuildW4Reference rotates three single-triangle meshes, one per cull mode
// (Front/Back/None), in front of a background array of spheres — the
// scene the cull-mode/any-hit asymmetry in 4.2 is meant to be checked
// against visually.
func BuildW4Reference() *Scene {
	s := &Scene{
		Camera: NewCamera(Vec3{0, 0, 0}, 60),
		Materials: []Material{
			NewSolidColorMaterial(ColorRGB{R: 1, G: 0.3, B: 0.3}),
			NewSolidColorMaterial(ColorRGB{R: 0.3, G: 1, B: 0.3}),
			NewSolidColorMaterial(ColorRGB{R: 0.3, G: 0.3, B: 1}),
			NewLambertMaterial(ColorRGB{R: 0.5, G: 0.5, B: 0.5}, 1),
		},
		Lights: []Light{NewPointLight(Vec3{0, 5, -2}, White, 50)},
	}

	cullModes := [3]CullMode{CullFrontFace, CullBackFace, CullNone}
	xs := [3]float64{-3, 0, 3}
	meshes := make([]*TriangleMesh, 3)
	for i := 0; i < 3; i++ {
		tri := quadMesh(0.8, cullModes[i], i)
		// Keep only the first triangle of the quad so each mesh is the
		// single triangle the spec scenario describes.
		tri.Indices = tri.Indices[:3]
		tri.Position = Vec3{xs[i], 0, 6}
		tri.UpdateTransforms()
		meshes[i] = tri
	}
	s.Meshes = meshes

	for i := 0; i < 5; i++ {
		x := (float64(i) - 2) * 1.4
		s.Spheres = append(s.Spheres, Sphere{Center: Vec3{x, -2.2, 9}, Radius: 0.5, MaterialIndex: 3})
	}

	s.Updater = func(sc *Scene, dt float64) {
		theta := math.Pi / 2 * sc.TotalTime()
		for _, m := range sc.Meshes {
			m.RotateY(theta)
		}
	}
	return s
}

// BuildW4Bunny loads an OBJ mesh at path and centers it in front of the
// camera. Per the loader's error contract (7. Error Handling Design) a
// missing or malformed OBJ isn't fatal: the scene falls back to a
// procedurally generated sphere standing in for the bunny, so the scene is
// always renderable and always exercises the mesh/AABB path.
func BuildW4Bunny(path string) *Scene {
	s := &Scene{
		Camera:    NewCamera(Vec3{0, 0, -2}, 45),
		Materials: []Material{NewLambertPhongMaterial(ColorRGB{R: 0.8, G: 0.75, B: 0.7}, 0.7, 0.3, 24)},
		Lights: []Light{
			NewPointLight(Vec3{3, 5, -4}, White, 60),
			NewDirectionalLight(Vec3{-0.3, -1, 0.5}, White, 1),
		},
	}

	mesh, ok := LoadOBJ(path, CullBackFace, 0)
	if !ok {
		mesh = GenerateSphereMesh(1, 16, 24, CullBackFace, 0)
		mesh.Position = Vec3{0, 0, 4}
		mesh.UpdateTransforms()
		s.Meshes = []*TriangleMesh{mesh}
		return s
	}

	mesh.Position = Vec3{0, -1, 4}
	mesh.Scale = Vec3{4, 4, 4}
	mesh.UpdateTransforms()
	s.Meshes = []*TriangleMesh{mesh}
	return s
}

// BuildW4Extra animates a pulsing sphere (radius = |sin(t)|) and a second
// sphere orbiting it, matching the Scene.Update contract described in 4.6.
func BuildW4Extra() *Scene {
	s := &Scene{
		Camera:    NewCamera(Vec3{0, 0, 0}, 60),
		Materials: []Material{NewLambertMaterial(ColorRGB{R: 0.7, G: 0.7, B: 0.9}, 1), NewLambertMaterial(ColorRGB{R: 0.9, G: 0.7, B: 0.3}, 1)},
		Lights:    []Light{NewPointLight(Vec3{0, 6, 0}, White, 50)},
	}
	center := Vec3{0, 0, 8}
	s.Spheres = []Sphere{
		{Center: center, Radius: 1, MaterialIndex: 0},
		{Center: center.Add(Vec3{3, 0, 0}), Radius: 0.4, MaterialIndex: 1},
	}
	const orbitRadius = 3.0
	const orbitSpeed = 1.3
	s.Updater = func(sc *Scene, dt float64) {
		t := sc.TotalTime()
		sc.Spheres[0].Radius = math.Abs(math.Sin(t))
		angle := t * orbitSpeed
		sc.Spheres[1].Center = center.Add(Vec3{math.Cos(angle) * orbitRadius, 0, math.Sin(angle) * orbitRadius})
	}
	return s
}
