// Package mesh converts a host mesh view into the geometry record and
// serializes it. Static and skeletal meshes share the layout; they
// differ only in the destination suffix and subdirectory.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/host"
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type Mesh struct {
	Name     string
	Vertices []Vertex
	Indexes  []uint16
}

// FromResource snapshots the highest-detail level of the mesh. Lower
// detail levels are discarded; this is fixed policy, not an option.
//
// The tangent basis Z carries the handedness sign in its w component
// and the sign must be applied to get the vertex normal. An old
// layout revision skipped the multiplier and produced mirrored
// normals on flipped UV islands; keep the multiplication.
func FromResource(res host.MeshResource) (*Mesh, error) {
	if res == nil {
		return nil, errors.Errorf("Nil mesh resource")
	}
	ref := res.Ref()
	if res.NumLODs() == 0 {
		return nil, errors.Errorf("Mesh %q has no geometry levels", ref.Name)
	}

	lod := res.LOD(0)
	m := &Mesh{Name: ref.Name}

	numVertices := lod.NumVertices()
	m.Vertices = make([]Vertex, numVertices)
	for i := 0; i < numVertices; i++ {
		tz := lod.TangentZ(i)
		v := Vertex{
			Position: lod.Position(i),
			Normal:   tz.Vec3().Mul(tz.W()),
		}
		if lod.NumUVChannels() > 0 {
			v.UV = lod.UV(0, i)
		}
		m.Vertices[i] = v
	}

	indices := lod.Indices()
	m.Indexes = make([]uint16, len(indices))
	for i, index := range indices {
		if index > math.MaxUint16 {
			return nil, errors.Errorf(
				"Mesh %q index %d at %d exceeds 16 bit range", ref.Name, index, i)
		}
		m.Indexes[i] = uint16(index)
	}

	return m, nil
}
