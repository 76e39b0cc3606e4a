package raytracer

import (
	"math"
	"testing"
)

// builders lists the argument-free constructors selectable by the CLI's
// -scene flag; w4-bunny takes an OBJ path and is tested separately below.
var builders = map[string]func() *Scene{
	"w1":           BuildW1,
	"w2":           BuildW2,
	"w3":           BuildW3,
	"w4-test":      BuildW4Test,
	"w4-reference": BuildW4Reference,
	"w4-extra":     BuildW4Extra,
}

func TestDemoScenesRenderWithoutPanicking(t *testing.T) {
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			scene := build()
			if scene.Camera == nil {
				t.Fatal("scene has no camera")
			}
			if len(scene.Materials) == 0 {
				t.Fatal("scene has no materials")
			}

			renderer := NewRenderer(8, 6, 1)
			renderer.SetScene(scene)
			scene.Update(1.0 / 60)
			renderer.Render()
		})
	}
}

func TestBuildW1HitsBothSpheres(t *testing.T) {
	scene := BuildW1()
	for _, dir := range []Vec3{{-0.25, 0, 1}, {0.25, 0, 1}} {
		hit := scene.ClosestHit(NewPrimaryRay(scene.Camera.Origin, dir.Normalized()))
		if !hit.DidHit {
			t.Errorf("expected ray %v to hit a sphere", dir)
		}
	}
}

func TestBuildW4BunnyMissingFileFallsBackToProceduralSphere(t *testing.T) {
	scene := BuildW4Bunny("/nonexistent/path/to/bunny.obj")
	if len(scene.Meshes) != 1 {
		t.Fatalf("expected a fallback mesh when the OBJ file is missing, got %d meshes", len(scene.Meshes))
	}
	if len(scene.Meshes[0].Indices) == 0 {
		t.Error("fallback sphere mesh has no triangles")
	}
	if scene.Camera == nil {
		t.Fatal("scene should still have a camera when the mesh fails to load")
	}
}

func TestGenerateSphereMeshProducesConsistentTopology(t *testing.T) {
	mesh := GenerateSphereMesh(2, 8, 12, CullBackFace, 0)
	wantVerts := (8 + 1) * (12 + 1)
	if len(mesh.LocalPositions) != wantVerts {
		t.Errorf("got %d vertices, want %d", len(mesh.LocalPositions), wantVerts)
	}
	wantTris := 8 * 12 * 2 * 3
	if len(mesh.Indices) != wantTris {
		t.Errorf("got %d indices, want %d", len(mesh.Indices), wantTris)
	}
	for _, p := range mesh.LocalPositions {
		if got := p.Magnitude(); math.Abs(got-2) > 1e-9 {
			t.Errorf("vertex %v has radius %f, want 2", p, got)
		}
	}
}

func TestGenerateTorusMeshProducesConsistentTopology(t *testing.T) {
	mesh := GenerateTorusMesh(3, 1, 10, 6, CullNone, 0)
	wantVerts := (10 + 1) * (6 + 1)
	if len(mesh.LocalPositions) != wantVerts {
		t.Errorf("got %d vertices, want %d", len(mesh.LocalPositions), wantVerts)
	}
}

func TestBuildW4ExtraAnimatesSphereRadiusAndOrbit(t *testing.T) {
	scene := BuildW4Extra()
	initialOrbit := scene.Spheres[1].Center
	scene.Update(0.3)
	if scene.Spheres[1].Center == initialOrbit {
		t.Error("expected the orbiting sphere to move after Update")
	}
	if scene.Spheres[0].Radius < 0 {
		t.Error("pulsing sphere radius should never be negative")
	}
}
