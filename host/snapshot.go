package host

import (
	"encoding/json"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MeshData is an in-memory MeshResource. It backs scene snapshots
// loaded from disk and the exporter test fixtures.
type MeshData struct {
	SourcePath string    `json:"source_path"`
	LODs       []LODData `json:"lods"`

	skeletal bool
}

type LODData struct {
	Positions  []mgl32.Vec3   `json:"positions"`
	TangentZs  []mgl32.Vec4   `json:"tangent_zs"`
	UVChannels [][]mgl32.Vec2 `json:"uv_channels"`
	Index      []uint32       `json:"indices"`
}

func (m *MeshData) Ref() ObjectRef {
	kind := KindStaticMesh
	if m.skeletal {
		kind = KindSkeletalMesh
	}
	return NewObjectRef(kind, m.SourcePath)
}

func (m *MeshData) NumLODs() int      { return len(m.LODs) }
func (m *MeshData) LOD(i int) LODView { return &m.LODs[i] }

func (l *LODData) NumVertices() int            { return len(l.Positions) }
func (l *LODData) Position(i int) mgl32.Vec3   { return l.Positions[i] }
func (l *LODData) TangentZ(i int) mgl32.Vec4   { return l.TangentZs[i] }
func (l *LODData) NumUVChannels() int          { return len(l.UVChannels) }
func (l *LODData) UV(ch, i int) mgl32.Vec2     { return l.UVChannels[ch][i] }
func (l *LODData) Indices() []uint32           { return l.Index }

type BoneData struct {
	Name   string `json:"name"`
	Parent int32  `json:"parent"`
}

type PoseData struct {
	Translation mgl32.Vec3 `json:"translation"`
	Rotation    mgl32.Quat `json:"rotation"`
	Scale       mgl32.Vec3 `json:"scale"`
}

type SkeletonData struct {
	SourcePath string     `json:"source_path"`
	Bones      []BoneData `json:"bones"`
	Poses      []PoseData `json:"poses"`
}

func (s *SkeletonData) Ref() ObjectRef         { return NewObjectRef(KindSkeleton, s.SourcePath) }
func (s *SkeletonData) NumBones() int          { return len(s.Bones) }
func (s *SkeletonData) BoneName(i int) string  { return s.Bones[i].Name }
func (s *SkeletonData) BoneParent(i int) int32 { return s.Bones[i].Parent }

func (s *SkeletonData) BindPose(i int) (mgl32.Vec3, mgl32.Quat, mgl32.Vec3) {
	p := s.Poses[i]
	return p.Translation, p.Rotation, p.Scale
}

type TrackData struct {
	Scale    []mgl32.Vec3 `json:"scale_keys"`
	Rotation []mgl32.Quat `json:"rotation_keys"`
	Position []mgl32.Vec3 `json:"position_keys"`
}

func (t *TrackData) ScaleKeys() []mgl32.Vec3    { return t.Scale }
func (t *TrackData) RotationKeys() []mgl32.Quat { return t.Rotation }
func (t *TrackData) PositionKeys() []mgl32.Vec3 { return t.Position }

type AnimationData struct {
	SourcePath string      `json:"source_path"`
	Tracks     []TrackData `json:"tracks"`
}

func (a *AnimationData) Ref() ObjectRef      { return NewObjectRef(KindAnimationClip, a.SourcePath) }
func (a *AnimationData) NumTracks() int      { return len(a.Tracks) }
func (a *AnimationData) Track(i int) TrackView { return &a.Tracks[i] }

type StaticPlacement struct {
	Transform Transform `json:"transform"`
	Mesh      MeshData  `json:"mesh"`
}

type SkeletalPlacement struct {
	Transform Transform      `json:"transform"`
	Mesh      MeshData       `json:"mesh"`
	Skeleton  SkeletonData   `json:"skeleton"`
	Clip      *AnimationData `json:"clip,omitempty"`
}

// Snapshot is a freestanding Scene built from plain data, the shape
// the CLI loads from a scene json file.
type Snapshot struct {
	SceneName      string              `json:"name"`
	CameraActors   []CameraActor       `json:"cameras"`
	LightActors    []LightActor        `json:"lights"`
	StaticMeshes   []StaticPlacement   `json:"static_meshes"`
	SkeletalMeshes []SkeletalPlacement `json:"skeletal_meshes"`
}

func (s *Snapshot) Name() string                 { return s.SceneName }
func (s *Snapshot) Cameras() []CameraActor       { return s.CameraActors }
func (s *Snapshot) DirectionalLights() []LightActor { return s.LightActors }

func (s *Snapshot) StaticMeshActors() []MeshActor {
	actors := make([]MeshActor, len(s.StaticMeshes))
	for i := range s.StaticMeshes {
		p := &s.StaticMeshes[i]
		actors[i] = MeshActor{Transform: p.Transform, Mesh: &p.Mesh}
	}
	return actors
}

func (s *Snapshot) SkeletalMeshActors() []SkeletalActor {
	actors := make([]SkeletalActor, len(s.SkeletalMeshes))
	for i := range s.SkeletalMeshes {
		p := &s.SkeletalMeshes[i]
		p.Mesh.skeletal = true
		a := SkeletalActor{Transform: p.Transform, Mesh: &p.Mesh, Skeleton: &p.Skeleton}
		if p.Clip != nil {
			a.Clip = p.Clip
		}
		actors[i] = a
	}
	return actors
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read scene snapshot %q", path)
	}
	s := &Snapshot{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse scene snapshot %q", path)
	}
	return s, nil
}
