package raytracer

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .gltf/.glb file and flattens every triangle primitive in
// every mesh into a single TriangleMesh, geometry only: materials, textures
// and the node hierarchy's per-node transforms are out of scope here (this
// repo's Non-goals exclude texture sampling), so every primitive is merged
// into mesh-local vertex space as found in the document. Grounded on
// mrigankad-gorenderengine/scene/gltf_loader.go's use of the qmuntal/gltf
// `modeler` helpers, trimmed to positions+indices.
func LoadGLTF(path string, cullMode CullMode, materialIndex int) (*TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %q: %w", path, err)
	}

	var positions []Vec3
	var indices []int

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			rawPositions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions: %w", err)
			}

			base := len(positions)
			for _, p := range rawPositions {
				positions = append(positions, Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
			}

			if prim.Indices != nil {
				rawIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices: %w", err)
				}
				for _, idx := range rawIndices {
					indices = append(indices, base+int(idx))
				}
			} else {
				for i := range rawPositions {
					indices = append(indices, base+i)
				}
			}
		}
	}

	if len(positions) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("gltf %q: no triangle geometry found", path)
	}
	return NewTriangleMesh(positions, indices, cullMode, materialIndex), nil
}
