package mesh

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/utils"
)

// Layout: int32 vertexCount, vertexCount * {vec3 position, vec3
// normal, vec2 uv}, int32 indexCount, indexCount * uint16.

func (m *Mesh) marshalTo(w *utils.Writer) error {
	if err := w.WriteInt32(int32(len(m.Vertices))); err != nil {
		return err
	}
	for i := range m.Vertices {
		if err := w.Write(&m.Vertices[i]); err != nil {
			return err
		}
	}
	if err := w.WriteInt32(int32(len(m.Indexes))); err != nil {
		return err
	}
	if len(m.Indexes) != 0 {
		if err := w.Write(m.Indexes); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the binary layout back. The mesh name is not part of
// the record; the file stem carries it.
func Decode(r io.Reader) (*Mesh, error) {
	m := &Mesh{}

	var vertexCount int32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, errors.Wrapf(err, "Failed to read vertex count")
	}
	if vertexCount < 0 {
		return nil, errors.Errorf("Negative vertex count %d", vertexCount)
	}
	m.Vertices = make([]Vertex, vertexCount)
	for i := range m.Vertices {
		if err := binary.Read(r, binary.LittleEndian, &m.Vertices[i]); err != nil {
			return nil, errors.Wrapf(err, "Failed to read vertex %d", i)
		}
	}

	var indexCount int32
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, errors.Wrapf(err, "Failed to read index count")
	}
	if indexCount < 0 {
		return nil, errors.Errorf("Negative index count %d", indexCount)
	}
	m.Indexes = make([]uint16, indexCount)
	if indexCount != 0 {
		if err := binary.Read(r, binary.LittleEndian, m.Indexes); err != nil {
			return nil, errors.Wrapf(err, "Failed to read indices")
		}
	}

	return m, nil
}
