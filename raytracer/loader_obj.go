package raytracer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ parses a narrow subset of the Wavefront OBJ format: "v x y z"
// vertex positions and "f i0 i1 i2" triangular faces (1-based indices).
// Every other line (vn, vt, mtllib, usemtl, comments, groups...) is
// ignored, mirroring spec.md's narrower loader rather than the teacher's
// full obj_loader.go (which also handles materials and textures — a
// declared Non-goal here). Returns (nil, false) if the file cannot be
// opened, matching the original "loader returns false, scene may stay
// empty" error contract.
func LoadOBJ(path string, cullMode CullMode, materialIndex int) (*TriangleMesh, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var positions []Vec3
	var indices []int

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields)
			if err != nil {
				return nil, false
			}
			positions = append(positions, p)
		case "f":
			faceIndices, err := parseFace(fields)
			if err != nil {
				return nil, false
			}
			indices = append(indices, faceIndices...)
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, false
	}
	if len(positions) == 0 || len(indices) == 0 {
		return nil, false
	}
	return NewTriangleMesh(positions, indices, cullMode, materialIndex), true
}

func parseVertex(fields []string) (Vec3, error) {
	if len(fields) < 4 {
		return Vec3{}, fmt.Errorf("malformed vertex line: %v", fields)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Vec3{}, fmt.Errorf("parse vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Vec3{}, fmt.Errorf("parse vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Vec3{}, fmt.Errorf("parse vertex z: %w", err)
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// parseFace triangulates an n-gon face as a fan around its first vertex,
// so a quad face "f 1 2 3 4" becomes triangles (0,1,2) and (0,2,3).
func parseFace(fields []string) ([]int, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("malformed face line: %v", fields)
	}
	verts := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		idx, err := parseFaceVertex(field)
		if err != nil {
			return nil, err
		}
		verts = append(verts, idx)
	}
	indices := make([]int, 0, (len(verts)-2)*3)
	for i := 1; i < len(verts)-1; i++ {
		indices = append(indices, verts[0], verts[i], verts[i+1])
	}
	return indices, nil
}

// parseFaceVertex extracts the position index from an OBJ face token,
// which may carry /vt/vn suffixes we ignore ("3", "3/1", "3/1/2", "3//2").
func parseFaceVertex(token string) (int, error) {
	posPart := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		posPart = token[:slash]
	}
	idx, err := strconv.Atoi(posPart)
	if err != nil {
		return 0, fmt.Errorf("parse face index %q: %w", token, err)
	}
	if idx < 0 {
		return 0, fmt.Errorf("negative (relative) face indices are not supported: %q", token)
	}
	return idx - 1, nil
}
