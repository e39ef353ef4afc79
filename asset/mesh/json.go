package mesh

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
)

type jsonVertex struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type jsonIndex struct {
	Index uint16 `json:"index"`
}

type jsonLOD struct {
	LOD      int          `json:"LOD"`
	Vertices []jsonVertex `json:"Vertices"`
	Indices  []jsonIndex  `json:"Indices"`
}

type jsonMesh struct {
	FileVersion int       `json:"FileVersion"`
	MeshName    string    `json:"MeshName"`
	VertexCount int       `json:"VertexCount"`
	IndexCount  int       `json:"IndexCount"`
	LODs        []jsonLOD `json:"LODs"`
}

// The document keeps the LODs array of the original layout but only
// ever holds the single exported level.
func (m *Mesh) exportJSON(destPath string, cfg *config.Config) error {
	lod := jsonLOD{
		LOD:      0,
		Vertices: make([]jsonVertex, len(m.Vertices)),
		Indices:  make([]jsonIndex, len(m.Indexes)),
	}
	for i, v := range m.Vertices {
		lod.Vertices[i] = jsonVertex{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
	}
	for i, index := range m.Indexes {
		lod.Indices[i] = jsonIndex{Index: index}
	}

	doc := jsonMesh{
		FileVersion: cfg.FileVersion,
		MeshName:    m.Name,
		VertexCount: len(m.Vertices),
		IndexCount:  len(m.Indexes),
		LODs:        []jsonLOD{lod},
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal mesh %q", m.Name)
	}
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return errors.Wrapf(err, "Failed to write %q", destPath)
	}
	return nil
}

// DecodeJSON reads the structured document back, for tests and
// tooling.
func DecodeJSON(data []byte) (*Mesh, error) {
	var doc jsonMesh
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse mesh document")
	}
	if len(doc.LODs) == 0 {
		return nil, errors.Errorf("Mesh document %q has no detail levels", doc.MeshName)
	}

	lod := doc.LODs[0]
	m := &Mesh{
		Name:     doc.MeshName,
		Vertices: make([]Vertex, len(lod.Vertices)),
		Indexes:  make([]uint16, len(lod.Indices)),
	}
	for i, v := range lod.Vertices {
		m.Vertices[i].Position = [3]float32{v.X, v.Y, v.Z}
	}
	for i, index := range lod.Indices {
		m.Indexes[i] = index.Index
	}
	return m, nil
}
