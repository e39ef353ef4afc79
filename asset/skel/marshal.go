package skel

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/merkaril/sceneexport/utils"
)

// Layout: int32 boneInfoCount, boneInfoCount * {string name, int32
// parent}, int32 bonePoseCount, bonePoseCount * {vec3 translation,
// quat rotation, vec3 scale}.

func (s *Skeleton) marshalTo(w *utils.Writer) error {
	if err := w.WriteInt32(int32(len(s.Bones))); err != nil {
		return err
	}
	for _, b := range s.Bones {
		if err := w.WriteString(b.Name); err != nil {
			return err
		}
		if err := w.WriteInt32(b.Parent); err != nil {
			return err
		}
	}

	if err := w.WriteInt32(int32(len(s.Poses))); err != nil {
		return err
	}
	for _, p := range s.Poses {
		if err := w.WriteVec3(p.Translation); err != nil {
			return err
		}
		if err := w.WriteQuat(p.Rotation); err != nil {
			return err
		}
		if err := w.WriteVec3(p.Scale); err != nil {
			return err
		}
	}
	return nil
}

func Decode(r io.Reader, cm *charmap.Charmap) (*Skeleton, error) {
	br := utils.NewReader(r, cm)
	s := &Skeleton{}

	boneCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if boneCount < 0 {
		return nil, errors.Errorf("Negative bone count %d", boneCount)
	}
	s.Bones = make([]Bone, boneCount)
	for i := range s.Bones {
		if s.Bones[i].Name, err = br.ReadString(); err != nil {
			return nil, err
		}
		if s.Bones[i].Parent, err = br.ReadInt32(); err != nil {
			return nil, err
		}
	}

	poseCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if poseCount < 0 {
		return nil, errors.Errorf("Negative pose count %d", poseCount)
	}
	s.Poses = make([]Pose, poseCount)
	for i := range s.Poses {
		p := &s.Poses[i]
		if p.Translation, err = br.ReadVec3(); err != nil {
			return nil, err
		}
		if p.Rotation, err = br.ReadQuat(); err != nil {
			return nil, err
		}
		if p.Scale, err = br.ReadVec3(); err != nil {
			return nil, err
		}
	}

	return s, nil
}
