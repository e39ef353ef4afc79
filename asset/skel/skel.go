// Package skel serializes bone hierarchies. The layout stores the
// bone-info and bind-pose arrays with independent counts; readers
// must validate the two counts against each other instead of assuming
// equality.
package skel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/host"
)

const ROOT_PARENT = -1

type Bone struct {
	Name   string
	Parent int32
}

type Pose struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

type Skeleton struct {
	Name  string
	Bones []Bone
	Poses []Pose
}

// FromResource snapshots the bone hierarchy and bind poses. Pose i
// belongs to bone i by construction.
func FromResource(res host.SkeletonResource) (*Skeleton, error) {
	if res == nil {
		return nil, errors.Errorf("Nil skeleton resource")
	}

	numBones := res.NumBones()
	s := &Skeleton{
		Name:  res.Ref().Name,
		Bones: make([]Bone, numBones),
		Poses: make([]Pose, numBones),
	}
	for i := 0; i < numBones; i++ {
		s.Bones[i] = Bone{Name: res.BoneName(i), Parent: res.BoneParent(i)}
		t, r, scale := res.BindPose(i)
		s.Poses[i] = Pose{Translation: t, Rotation: r, Scale: scale}
	}
	return s, nil
}
