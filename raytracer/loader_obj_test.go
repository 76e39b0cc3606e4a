package raytracer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp obj: %v", err)
	}
	return path
}

func TestLoadOBJParsesQuad(t *testing.T) {
	path := writeTempOBJ(t, `
# a simple quad
v -1 0 -1
v 1 0 -1
v 1 0 1
v -1 0 1
f 1 2 3 4
`)
	mesh, ok := LoadOBJ(path, CullNone, 0)
	if !ok {
		t.Fatal("expected successful load")
	}
	if len(mesh.LocalPositions) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(mesh.LocalPositions))
	}
	if len(mesh.Indices) != 6 {
		t.Errorf("expected 6 indices (2 triangles from fan triangulation), got %d", len(mesh.Indices))
	}
}

func TestLoadOBJIgnoresUnknownCommands(t *testing.T) {
	path := writeTempOBJ(t, `
mtllib foo.mtl
usemtl bar
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2/2/1 3/3/1
`)
	mesh, ok := LoadOBJ(path, CullNone, 0)
	if !ok {
		t.Fatal("expected successful load ignoring vn/vt/mtllib/usemtl")
	}
	if len(mesh.LocalPositions) != 3 || len(mesh.Indices) != 3 {
		t.Errorf("unexpected mesh shape: %d positions, %d indices", len(mesh.LocalPositions), len(mesh.Indices))
	}
}

func TestLoadOBJMissingFileReturnsFalse(t *testing.T) {
	_, ok := LoadOBJ("/nonexistent/path/does-not-exist.obj", CullNone, 0)
	if ok {
		t.Fatal("expected false for a missing file")
	}
}
