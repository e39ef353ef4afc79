package utils

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Writer is a sequential append-only little-endian sink bound to one
// destination file. It owns the file handle for its lifetime; Close
// must be called on every exit path.
type Writer struct {
	f    *os.File
	path string
	enc  *charmap.Charmap
	n    int64
}

// ValidateDestination rejects paths we know cannot be written before
// any file is created: empty paths and paths whose parent directory
// does not exist.
func ValidateDestination(path string) error {
	if path == "" {
		return errors.Errorf("Empty destination path")
	}
	dir := filepath.Dir(path)
	if fi, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "Destination directory %q not accessible", dir)
	} else if !fi.IsDir() {
		return errors.Errorf("Destination parent %q is not a directory", dir)
	}
	return nil
}

func NewWriter(path string, enc *charmap.Charmap) (*Writer, error) {
	if err := ValidateDestination(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create %q", path)
	}
	return &Writer{f: f, path: path, enc: enc}, nil
}

func (w *Writer) Path() string { return w.path }

// BytesWritten reports how many bytes were flushed so far. After a
// failed write the destination must be treated as corrupt regardless
// of this value.
func (w *Writer) BytesWritten() int64 { return w.n }

func (w *Writer) Write(data interface{}) error {
	if err := binary.Write(w.f, binary.LittleEndian, data); err != nil {
		return errors.Wrapf(err, "Write failed on %q", w.path)
	}
	w.n += int64(binary.Size(data))
	return nil
}

func (w *Writer) WriteInt32(v int32) error     { return w.Write(v) }
func (w *Writer) WriteUint16(v uint16) error   { return w.Write(v) }
func (w *Writer) WriteFloat32(v float32) error { return w.Write(v) }
func (w *Writer) WriteVec2(v mgl32.Vec2) error { return w.Write(v) }
func (w *Writer) WriteVec3(v mgl32.Vec3) error { return w.Write(v) }
func (w *Writer) WriteVec4(v mgl32.Vec4) error { return w.Write(v) }

// WriteQuat writes x, y, z, w in that order. mgl32.Quat stores W
// first, so the quat is never written as a raw struct.
func (w *Writer) WriteQuat(q mgl32.Quat) error {
	return w.Write([4]float32{q.V[0], q.V[1], q.V[2], q.W})
}

// WriteString writes an int32 byte length followed by the charmap
// encoded bytes, no terminator.
func (w *Writer) WriteString(s string) error {
	bs, err := EncodeString(w.enc, s)
	if err != nil {
		return errors.Wrapf(err, "Failed to encode %q for %q", s, w.path)
	}
	if err := w.WriteInt32(int32(len(bs))); err != nil {
		return err
	}
	return w.Write(bs)
}

func (w *Writer) Close() error {
	if err := w.f.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close %q", w.path)
	}
	return nil
}
