package level

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
)

func meshData(name string, indices []uint32) host.MeshData {
	return host.MeshData{
		SourcePath: "/Game/Props/" + name + "." + name,
		LODs: []host.LODData{{
			Positions:  []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			TangentZs:  []mgl32.Vec4{{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}},
			UVChannels: [][]mgl32.Vec2{{{0, 0}, {1, 0}, {0, 1}}},
			Index:      indices,
		}},
	}
}

func testScene() *host.Snapshot {
	return &host.Snapshot{
		SceneName: "TestLevel",
		CameraActors: []host.CameraActor{
			{Name: "Cam0", Location: mgl32.Vec3{0, 0, 10}, LookAt: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.QuatIdent(), FOV: 90, AspectRatio: 1.777},
			{Name: "Cam1", Location: mgl32.Vec3{5, 5, 5}, LookAt: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.QuatIdent(), FOV: 60, AspectRatio: 1.333},
		},
		LightActors: []host.LightActor{
			{Name: "Sun", Color: [4]float32{1, 0.9, 0.8, 1}, Direction: mgl32.Vec3{0, -1, 0}, Intensity: 3.5},
		},
		StaticMeshes: []host.StaticPlacement{
			{Transform: host.Transform{Location: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}, Mesh: meshData("Rock", []uint32{0, 1, 2})},
			{Transform: host.Transform{Location: mgl32.Vec3{4, 5, 6}, Rotation: mgl32.QuatIdent()}, Mesh: meshData("Rock", []uint32{0, 1, 2})},
			{Transform: host.Transform{Location: mgl32.Vec3{7, 8, 9}, Rotation: mgl32.QuatIdent()}, Mesh: meshData("Tree", []uint32{2, 1, 0})},
		},
		SkeletalMeshes: []host.SkeletalPlacement{
			{
				Transform: host.Transform{Location: mgl32.Vec3{0, 0, 1}, Rotation: mgl32.QuatIdent()},
				Mesh:      meshData("Guard", []uint32{0, 1, 2}),
				Skeleton: host.SkeletonData{
					SourcePath: "/Game/Chars/GuardSkel.GuardSkel",
					Bones:      []host.BoneData{{Name: "root", Parent: -1}},
					Poses:      []host.PoseData{{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}},
				},
				Clip: &host.AnimationData{
					SourcePath: "/Game/Anims/Idle.Idle",
					Tracks:     []host.TrackData{{Position: []mgl32.Vec3{{0, 0, 0}}}},
				},
			},
		},
	}
}

func exportTestMap(t *testing.T, scene host.Scene, textures host.TextureDumper) (string, *config.Config) {
	t.Helper()
	cfg := config.Default()
	outDir := t.TempDir()

	e, err := NewExporter(scene, cfg, textures)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	destPath := filepath.Join(outDir, "level.map")
	if err := e.ExportMap(destPath); err != nil {
		t.Fatalf("ExportMap failed: %v", err)
	}
	return destPath, cfg
}

func decodeMap(t *testing.T, path string, cfg *config.Config) *Map {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	cm, _ := cfg.Charmap()
	m, err := Decode(bytes.NewReader(data), cm)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return m
}

func TestExportMapSections(t *testing.T) {
	destPath, cfg := exportTestMap(t, testScene(), nil)
	m := decodeMap(t, destPath, cfg)

	if len(m.Cameras) != 2 || len(m.Lights) != 1 ||
		len(m.StaticPlacements) != 3 || len(m.SkeletalPlacements) != 1 {
		t.Fatalf("section counts = %d/%d/%d/%d, want 2/1/3/1",
			len(m.Cameras), len(m.Lights), len(m.StaticPlacements), len(m.SkeletalPlacements))
	}

	// enumeration order, not sorted
	if m.Cameras[0].FOV != 90 || m.Cameras[1].FOV != 60 {
		t.Errorf("camera order changed: %v %v", m.Cameras[0].FOV, m.Cameras[1].FOV)
	}
	if m.StaticPlacements[0].ResourceName != "Rock" ||
		m.StaticPlacements[1].ResourceName != "Rock" ||
		m.StaticPlacements[2].ResourceName != "Tree" {
		t.Errorf("placement order changed: %+v", m.StaticPlacements)
	}
	if m.StaticPlacements[2].Location != (mgl32.Vec3{7, 8, 9}) {
		t.Errorf("placement location = %v", m.StaticPlacements[2].Location)
	}
	if m.Lights[0].Intensity != 3.5 {
		t.Errorf("light intensity = %v", m.Lights[0].Intensity)
	}
	if m.SkeletalPlacements[0].ResourceName != "Guard" {
		t.Errorf("skeletal placement name = %q", m.SkeletalPlacements[0].ResourceName)
	}
}

func TestExportMapWritesResourceFiles(t *testing.T) {
	destPath, cfg := exportTestMap(t, testScene(), nil)
	outDir := filepath.Dir(destPath)

	for _, rel := range []string{
		"StaticMesh/Rock" + cfg.Formats.StaticMesh,
		"StaticMesh/Tree" + cfg.Formats.StaticMesh,
		"SkeletalMesh/Guard" + cfg.Formats.SkeletalMesh,
		"SkeletalMesh/Skeleton/GuardSkel" + cfg.Formats.Skeleton,
		"SkeletalMesh/AnimSequence/Idle" + cfg.Formats.Animation,
	} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing side file %q: %v", rel, err)
		}
	}
}

func TestExportMapSkipsFailedResources(t *testing.T) {
	scene := testScene()
	// not representable in 16 bit indices, mesh export must fail
	scene.StaticMeshes[2].Mesh.LODs[0].Index = []uint32{0, 1, 99999}

	destPath, cfg := exportTestMap(t, scene, nil)
	m := decodeMap(t, destPath, cfg)

	// the map file still holds every placement record
	if len(m.StaticPlacements) != 3 {
		t.Fatalf("static placement count = %d, want 3", len(m.StaticPlacements))
	}

	outDir := filepath.Dir(destPath)
	if _, err := os.Stat(filepath.Join(outDir, "StaticMesh", "Tree"+cfg.Formats.StaticMesh)); !os.IsNotExist(err) {
		t.Error("failed mesh must not leave a file behind")
	}
	if _, err := os.Stat(filepath.Join(outDir, "StaticMesh", "Rock"+cfg.Formats.StaticMesh)); err != nil {
		t.Errorf("healthy mesh missing: %v", err)
	}
}

func TestDecodeRejectsNegativeCounts(t *testing.T) {
	cfg := config.Default()
	cm, _ := cfg.Charmap()

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative camera count")
	}

	// empty camera and light sections, negative placement count
	buf.Reset()
	binary.Write(&buf, binary.LittleEndian, int32(0))
	binary.Write(&buf, binary.LittleEndian, int32(0))
	binary.Write(&buf, binary.LittleEndian, int32(-7))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative placement count")
	}
}

func TestExportMapInvalidDestination(t *testing.T) {
	e, err := NewExporter(testScene(), config.Default(), nil)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	if err := e.ExportMap(""); err == nil {
		t.Error("expected error for empty destination")
	}
	if err := e.ExportMap(filepath.Join(t.TempDir(), "no", "such", "dir", "x.map")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

type recordingDumper struct {
	dumped []string
	fail   bool
}

func (d *recordingDumper) DumpTextures(m host.MeshResource, destDir string) error {
	d.dumped = append(d.dumped, m.Ref().Name)
	if d.fail {
		return errors.Errorf("no textures")
	}
	return nil
}

func TestExportMapDumpsTextures(t *testing.T) {
	dumper := &recordingDumper{}
	destPath, _ := exportTestMap(t, testScene(), dumper)

	if len(dumper.dumped) != 4 {
		t.Fatalf("texture dump calls = %d, want 4 (got %v)", len(dumper.dumped), dumper.dumped)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(destPath), "Textures")); err != nil {
		t.Errorf("textures directory missing: %v", err)
	}
}

func TestExportMapToleratesTextureDumpFailure(t *testing.T) {
	dumper := &recordingDumper{fail: true}
	destPath, cfg := exportTestMap(t, testScene(), dumper)
	m := decodeMap(t, destPath, cfg)
	if len(m.StaticPlacements) != 3 {
		t.Errorf("static placement count = %d", len(m.StaticPlacements))
	}
}

// brokenScene returns a malformed actor with no mesh component.
type brokenScene struct{ *host.Snapshot }

func (b brokenScene) StaticMeshActors() []host.MeshActor {
	return []host.MeshActor{{}}
}

func TestExportMapPanicsOnMissingComponent(t *testing.T) {
	e, err := NewExporter(brokenScene{testScene()}, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for actor without mesh component")
		}
	}()
	e.ExportMap(filepath.Join(t.TempDir(), "x.map"))
}
