package mesh

import (
	"os"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/merkaril/sceneexport/utils"
)

func (m *Mesh) buildGLTF() *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	uvs := make([][2]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
		normal := v.Normal
		if normal.Len() > 0.5 {
			normal = normal.Normalize()
		}
		normals[i] = normal
		uvs[i] = v.UV
	}

	indices := make([]uint32, len(m.Indexes))
	for i, index := range m.Indexes {
		indices[i] = uint32(index)
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(doc, positions),
	}
	if len(m.Vertices) != 0 {
		attributes["NORMAL"] = modeler.WriteNormal(doc, normals)
		attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(doc, uvs)
	}

	primitive := &gltf.Primitive{Attributes: attributes}
	if len(indices) != 0 {
		primitive.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       m.Name,
		Primitives: []*gltf.Primitive{primitive},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc
}

func (m *Mesh) exportGLTF(destPath string) error {
	if err := utils.ValidateDestination(destPath); err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", destPath)
	}

	encoder := gltf.NewEncoder(f)
	encoder.AsBinary = true
	if err := encoder.Encode(m.buildGLTF()); err != nil {
		f.Close()
		return errors.Wrapf(err, "Failed to encode gltf %q", destPath)
	}
	return f.Close()
}
