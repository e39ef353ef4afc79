package utils

import (
	"encoding/binary"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Reader mirrors Writer for decoding exported files, mostly in tests
// and tooling. It does not own the underlying stream.
type Reader struct {
	r   io.Reader
	enc *charmap.Charmap
}

func NewReader(r io.Reader, enc *charmap.Charmap) *Reader {
	return &Reader{r: r, enc: enc}
}

func (r *Reader) Read(out interface{}) error {
	if err := binary.Read(r.r, binary.LittleEndian, out); err != nil {
		return errors.Wrapf(err, "Read failed")
	}
	return nil
}

func (r *Reader) ReadInt32() (v int32, err error)     { err = r.Read(&v); return }
func (r *Reader) ReadUint16() (v uint16, err error)   { err = r.Read(&v); return }
func (r *Reader) ReadFloat32() (v float32, err error) { err = r.Read(&v); return }
func (r *Reader) ReadVec2() (v mgl32.Vec2, err error) { err = r.Read(&v); return }
func (r *Reader) ReadVec3() (v mgl32.Vec3, err error) { err = r.Read(&v); return }
func (r *Reader) ReadVec4() (v mgl32.Vec4, err error) { err = r.Read(&v); return }

func (r *Reader) ReadQuat() (mgl32.Quat, error) {
	var raw [4]float32
	if err := r.Read(&raw); err != nil {
		return mgl32.Quat{}, err
	}
	return mgl32.Quat{V: mgl32.Vec3{raw[0], raw[1], raw[2]}, W: raw[3]}, nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.Errorf("Negative string length %d", n)
	}
	bs := make([]byte, n)
	if err := r.Read(bs); err != nil {
		return "", err
	}
	return DecodeString(r.enc, bs)
}
