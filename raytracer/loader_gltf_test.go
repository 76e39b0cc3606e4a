package raytracer

import "testing"

func TestLoadGLTFMissingFileReturnsError(t *testing.T) {
	_, err := LoadGLTF("/nonexistent/path/to/model.gltf", CullBackFace, 0)
	if err == nil {
		t.Fatal("expected an error for a missing gltf file")
	}
}
