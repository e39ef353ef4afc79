package anim

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/merkaril/sceneexport/utils"
)

// Layout: int32 trackCount, then per track three length-prefixed key
// sequences: int32 + vec3 scale keys, int32 + quat rotation keys,
// int32 + vec3 position keys.

func (a *Animation) marshalTo(w *utils.Writer) error {
	if err := w.WriteInt32(int32(len(a.Tracks))); err != nil {
		return err
	}
	for i := range a.Tracks {
		t := &a.Tracks[i]
		if err := w.WriteInt32(int32(len(t.ScaleKeys))); err != nil {
			return err
		}
		for _, k := range t.ScaleKeys {
			if err := w.WriteVec3(k); err != nil {
				return err
			}
		}
		if err := w.WriteInt32(int32(len(t.RotationKeys))); err != nil {
			return err
		}
		for _, k := range t.RotationKeys {
			if err := w.WriteQuat(k); err != nil {
				return err
			}
		}
		if err := w.WriteInt32(int32(len(t.PositionKeys))); err != nil {
			return err
		}
		for _, k := range t.PositionKeys {
			if err := w.WriteVec3(k); err != nil {
				return err
			}
		}
	}
	return nil
}

func Decode(r io.Reader, cm *charmap.Charmap) (*Animation, error) {
	br := utils.NewReader(r, cm)
	a := &Animation{}

	trackCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if trackCount < 0 {
		return nil, errors.Errorf("Negative track count %d", trackCount)
	}
	a.Tracks = make([]Track, trackCount)
	for i := range a.Tracks {
		t := &a.Tracks[i]

		n, err := br.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.Errorf("Negative scale key count %d in track %d", n, i)
		}
		t.ScaleKeys = make([]mgl32.Vec3, n)
		for j := range t.ScaleKeys {
			if t.ScaleKeys[j], err = br.ReadVec3(); err != nil {
				return nil, err
			}
		}

		if n, err = br.ReadInt32(); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.Errorf("Negative rotation key count %d in track %d", n, i)
		}
		t.RotationKeys = make([]mgl32.Quat, n)
		for j := range t.RotationKeys {
			if t.RotationKeys[j], err = br.ReadQuat(); err != nil {
				return nil, err
			}
		}

		if n, err = br.ReadInt32(); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.Errorf("Negative position key count %d in track %d", n, i)
		}
		t.PositionKeys = make([]mgl32.Vec3, n)
		for j := range t.PositionKeys {
			if t.PositionKeys[j], err = br.ReadVec3(); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}
