// Package host is the boundary to the engine that owns the live scene
// graph. The exporter only ever sees read-only views: actor lists per
// kind, component transforms and resource buffer views. Anything that
// implements these interfaces can be exported, including the in-memory
// snapshot in this package.
package host

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/merkaril/sceneexport/utils"
)

type Kind int

const (
	KindStaticMesh Kind = iota
	KindSkeletalMesh
	KindSkeleton
	KindAnimationClip
	KindCamera
	KindDirectionalLight
)

func (k Kind) String() string {
	switch k {
	case KindStaticMesh:
		return "StaticMesh"
	case KindSkeletalMesh:
		return "SkeletalMesh"
	case KindSkeleton:
		return "Skeleton"
	case KindAnimationClip:
		return "AnimSequence"
	case KindCamera:
		return "Camera"
	case KindDirectionalLight:
		return "DirectionalLight"
	}
	return "Unknown"
}

type Transform struct {
	Location mgl32.Vec3
	Rotation mgl32.Quat
}

type CameraActor struct {
	Name        string
	Location    mgl32.Vec3
	LookAt      mgl32.Vec3
	Rotation    mgl32.Quat
	FOV         float32
	AspectRatio float32
}

type LightActor struct {
	Name      string
	Color     utils.ColorFloat
	Direction mgl32.Vec3
	Intensity float32
}

type MeshActor struct {
	Transform Transform
	Mesh      MeshResource
}

type SkeletalActor struct {
	Transform Transform
	Mesh      MeshResource
	Skeleton  SkeletonResource
	// Clip is the actor's active animation clip, nil when idle.
	Clip AnimationResource
}

// Scene enumerates the actors of one scene, one method per exportable
// kind. Order is the host's enumeration order and the exporter must
// preserve it.
type Scene interface {
	Name() string
	Cameras() []CameraActor
	DirectionalLights() []LightActor
	StaticMeshActors() []MeshActor
	SkeletalMeshActors() []SkeletalActor
}

// MeshResource is a read-only view over one mesh's render data. LODs
// are ordered highest detail first.
type MeshResource interface {
	Ref() ObjectRef
	NumLODs() int
	LOD(i int) LODView
}

type LODView interface {
	NumVertices() int
	Position(i int) mgl32.Vec3
	// TangentZ is the tangent basis Z row: xyz the unnormalized basis
	// normal, w the handedness sign multiplier.
	TangentZ(i int) mgl32.Vec4
	NumUVChannels() int
	UV(channel, i int) mgl32.Vec2
	Indices() []uint32
}

type SkeletonResource interface {
	Ref() ObjectRef
	NumBones() int
	BoneName(i int) string
	// BoneParent is -1 for the root bone.
	BoneParent(i int) int32
	BindPose(i int) (translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3)
}

type AnimationResource interface {
	Ref() ObjectRef
	NumTracks() int
	Track(i int) TrackView
}

// TrackView holds one bone's raw key sequences. The three channels
// are keyed independently; constant channels may hold a single key.
type TrackView interface {
	ScaleKeys() []mgl32.Vec3
	RotationKeys() []mgl32.Quat
	PositionKeys() []mgl32.Vec3
}

// TextureDumper is the host's opaque texture export utility. The
// exporter only points it at a mesh and a directory.
type TextureDumper interface {
	DumpTextures(mesh MeshResource, destDir string) error
}
