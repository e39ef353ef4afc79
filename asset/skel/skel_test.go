package skel

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
)

func biped() *host.SkeletonData {
	return &host.SkeletonData{
		SourcePath: "/Game/Chars/Biped.Biped",
		Bones: []host.BoneData{
			{Name: "root", Parent: -1},
			{Name: "spine", Parent: 0},
			{Name: "head", Parent: 1},
		},
		Poses: []host.PoseData{
			{Translation: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}},
			{Translation: mgl32.Vec3{0, 1, 0}, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}},
			{Translation: mgl32.Vec3{0, 2, 0.5}, Rotation: mgl32.Quat{W: 0, V: mgl32.Vec3{0, 1, 0}}, Scale: mgl32.Vec3{2, 2, 2}},
		},
	}
}

func TestExportRoundTrip(t *testing.T) {
	cfg := config.Default()
	destPath := filepath.Join(t.TempDir(), "biped.skt")

	if err := Export(biped(), destPath, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	cm, _ := cfg.Charmap()
	got, err := Decode(bytes.NewReader(data), cm)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want, _ := FromResource(biped())
	if len(got.Bones) != len(want.Bones) || len(got.Poses) != len(want.Poses) {
		t.Fatalf("decoded %d bones %d poses", len(got.Bones), len(got.Poses))
	}
	for i := range want.Bones {
		if got.Bones[i] != want.Bones[i] {
			t.Errorf("bone %d = %+v, want %+v", i, got.Bones[i], want.Bones[i])
		}
		if got.Poses[i] != want.Poses[i] {
			t.Errorf("pose %d = %+v, want %+v", i, got.Poses[i], want.Poses[i])
		}
	}
	if got.Bones[0].Parent != ROOT_PARENT {
		t.Errorf("root parent = %d", got.Bones[0].Parent)
	}
}

func TestExportZeroBones(t *testing.T) {
	cfg := config.Default()
	destPath := filepath.Join(t.TempDir(), "empty.skt")
	res := &host.SkeletonData{SourcePath: "Empty"}

	if err := Export(res, destPath, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, _ := os.ReadFile(destPath)
	if len(data) != 8 {
		t.Errorf("file size = %d, want two zero counts", len(data))
	}
}

func TestExportRejectsJSON(t *testing.T) {
	cfg := config.Default()
	destPath := filepath.Join(t.TempDir(), "biped.json")
	if err := Export(biped(), destPath, cfg); err == nil {
		t.Fatal("expected error for unsupported json form")
	}
	if _, err := os.Stat(destPath); !os.IsNotExist(err) {
		t.Error("rejected export must not create a file")
	}
}

func TestDecodeRejectsNegativeCounts(t *testing.T) {
	cfg := config.Default()
	cm, _ := cfg.Charmap()

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative bone count")
	}

	// valid empty bone section, negative pose count
	buf.Reset()
	binary.Write(&buf, binary.LittleEndian, int32(0))
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative pose count")
	}
}

func TestExportInvalidDestination(t *testing.T) {
	cfg := config.Default()
	if err := Export(biped(), "", cfg); err == nil {
		t.Error("expected error for empty destination")
	}
	if err := Export(nil, filepath.Join(t.TempDir(), "s.skt"), cfg); err == nil {
		t.Error("expected error for nil resource")
	}
}
