package mesh

import (
	"os"

	"github.com/mogaika/fbx/builders/bfbx73"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/utils"
	"github.com/merkaril/sceneexport/utils/fbxbuilder"
)

// buildFBX emits one Geometry and one Model node. The record is
// already triangulated; the last index of each triangle carries the
// fbx end-of-polygon marker.
func (m *Mesh) buildFBX(f *fbxbuilder.FBXBuilder) {
	vertices := make([]float64, 0, len(m.Vertices)*3)
	normals := make([]float64, 0, len(m.Vertices)*3)
	uv := make([]float64, 0, len(m.Vertices)*2)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		vertices = append(vertices,
			float64(v.Position[0]), float64(v.Position[1]), float64(v.Position[2]))
		normals = append(normals,
			float64(v.Normal[0]), float64(v.Normal[1]), float64(v.Normal[2]))
		uv = append(uv, float64(v.UV[0]), float64(-v.UV[1]))
	}

	indexes := make([]int32, 0, len(m.Indexes))
	uvindexes := make([]int32, 0, len(m.Indexes))
	for i := 0; i+2 < len(m.Indexes); i += 3 {
		a, b, c := int32(m.Indexes[i]), int32(m.Indexes[i+1]), int32(m.Indexes[i+2])
		indexes = append(indexes, a, b, -c-1)
		uvindexes = append(uvindexes, a, b, c)
	}

	geometryId := f.GenerateId()
	geometryLayer := bfbx73.Layer(0).AddNodes(
		bfbx73.Version(100),
	)
	geometry := bfbx73.Geometry(geometryId, "\x00\x01Geometry", "Mesh").AddNodes(
		bfbx73.Properties70().AddNodes(
			bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
		),
		bfbx73.GeometryVersion(124),
		bfbx73.Vertices(vertices),
		bfbx73.PolygonVertexIndex(indexes),
		geometryLayer,
	)

	geometry.AddNode(
		bfbx73.LayerElementNormal(0).AddNodes(
			bfbx73.Version(101),
			bfbx73.Name(""),
			bfbx73.MappingInformationType("ByVertice"),
			bfbx73.ReferenceInformationType("Direct"),
			bfbx73.Normals(normals),
		),
	)
	geometryLayer.AddNode(
		bfbx73.LayerElement().AddNodes(
			bfbx73.Type("LayerElementNormal"),
			bfbx73.TypedIndex(0),
		),
	)

	geometry.AddNode(
		bfbx73.LayerElementUV(0).AddNodes(
			bfbx73.Version(101),
			bfbx73.Name(""),
			bfbx73.MappingInformationType("ByPolygonVertex"),
			bfbx73.ReferenceInformationType("IndexToDirect"),
			bfbx73.UV(uv),
			bfbx73.UVIndex(uvindexes),
		),
	)
	geometryLayer.AddNode(
		bfbx73.LayerElement().AddNodes(
			bfbx73.Type("LayerElementUV"),
			bfbx73.TypedIndex(0),
		),
	)

	modelId := f.GenerateId()
	model := bfbx73.Model(modelId, m.Name+"\x00\x01Model", "Mesh").AddNodes(
		bfbx73.Version(232),
		bfbx73.Properties70().AddNodes(
			bfbx73.P("InheritType", "enum", "", "", int32(1)),
			bfbx73.P("DefaultAttributeIndex", "int", "Integer", "", int32(0)),
			bfbx73.P("Lcl Translation", "Lcl Translation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A", float64(1), float64(1), float64(1)),
		),
		bfbx73.Shading(true),
		bfbx73.Culling("CullingOff"),
	)

	f.AddObjects(model, geometry)
	f.AddConnections(
		bfbx73.C("OO", geometryId, modelId),
		bfbx73.C("OO", modelId, 0),
	)
}

func (m *Mesh) exportFBX(destPath string) error {
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}

	f := fbxbuilder.NewFBXBuilder(destPath)
	m.buildFBX(f)

	out, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", destPath)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "Fbx exporting failed for %q", destPath)
	}
	return out.Close()
}
