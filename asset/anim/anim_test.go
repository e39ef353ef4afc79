package anim

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

// walk returns a two-track clip where every channel has a different
// key count, including a constant single-key channel.
func walk() *host.AnimationData {
	return &host.AnimationData{
		SourcePath: "/Game/Anims/Walk.Walk",
		Tracks: []host.TrackData{
			{
				Scale:    []mgl32.Vec3{{1, 1, 1}},
				Rotation: []mgl32.Quat{mgl32.QuatIdent(), {W: 0.5, V: mgl32.Vec3{0.5, 0.5, 0.5}}},
				Position: []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}},
			},
			{
				Scale:    nil,
				Rotation: []mgl32.Quat{mgl32.QuatIdent()},
				Position: []mgl32.Vec3{{4, 4, 4}},
			},
		},
	}
}

func TestExportRoundTrip(t *testing.T) {
	cfg := config.Default()
	destPath := filepath.Join(t.TempDir(), "walk.anm")

	if err := Export(walk(), destPath, cfg); err != nil {
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

	if len(got.Tracks) != 2 {
		t.Fatalf("track count = %d, want 2", len(got.Tracks))
	}

	t0 := got.Tracks[0]
	if len(t0.ScaleKeys) != 1 || len(t0.RotationKeys) != 2 || len(t0.PositionKeys) != 3 {
		t.Fatalf("track 0 key counts = %d/%d/%d, want 1/2/3",
			len(t0.ScaleKeys), len(t0.RotationKeys), len(t0.PositionKeys))
	}
	if t0.PositionKeys[2] != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("track 0 position key 2 = %v", t0.PositionKeys[2])
	}
	if t0.RotationKeys[1] != (mgl32.Quat{W: 0.5, V: mgl32.Vec3{0.5, 0.5, 0.5}}) {
		t.Errorf("track 0 rotation key 1 = %v", t0.RotationKeys[1])
	}

	t1 := got.Tracks[1]
	if len(t1.ScaleKeys) != 0 || len(t1.RotationKeys) != 1 || len(t1.PositionKeys) != 1 {
		t.Errorf("track 1 key counts = %d/%d/%d, want 0/1/1",
			len(t1.ScaleKeys), len(t1.RotationKeys), len(t1.PositionKeys))
	}
}

func TestExportEmptyClip(t *testing.T) {
	cfg := config.Default()
	destPath := filepath.Join(t.TempDir(), "empty.anm")
	res := &host.AnimationData{SourcePath: "Empty"}

	if err := Export(res, destPath, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, _ := os.ReadFile(destPath)
	if len(data) != 4 {
		t.Errorf("file size = %d, want single zero count", len(data))
	}
}

func TestDecodeRejectsNegativeCounts(t *testing.T) {
	cfg := config.Default()
	cm, _ := cfg.Charmap()

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative track count")
	}

	// one track with a negative scale key count
	buf.Reset()
	binary.Write(&buf, binary.LittleEndian, int32(1))
	binary.Write(&buf, binary.LittleEndian, int32(-5))
	if _, err := Decode(bytes.NewReader(buf.Bytes()), cm); err == nil {
		t.Error("expected error for negative key count")
	}
}

func TestExportRejectsJSONAndBadPaths(t *testing.T) {
	cfg := config.Default()
	if err := Export(walk(), filepath.Join(t.TempDir(), "walk.json"), cfg); err == nil {
		t.Error("expected error for unsupported json form")
	}
	if err := Export(walk(), "", cfg); err == nil {
		t.Error("expected error for empty destination")
	}
	if err := Export(nil, filepath.Join(t.TempDir(), "a.anm"), cfg); err == nil {
		t.Error("expected error for nil resource")
	}
}
