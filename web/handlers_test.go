package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	scene := &host.Snapshot{
		SceneName: "WebLevel",
		CameraActors: []host.CameraActor{
			{Name: "Cam0", Rotation: mgl32.QuatIdent(), FOV: 90},
		},
		StaticMeshes: []host.StaticPlacement{
			{
				Transform: host.Transform{Rotation: mgl32.QuatIdent()},
				Mesh: host.MeshData{
					SourcePath: "/Game/Props/Crate.Crate",
					LODs: []host.LODData{{
						Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
						TangentZs: []mgl32.Vec4{{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}},
						Index:     []uint32{0, 1, 2},
					}},
				},
			},
		},
	}
	return &Server{scene: scene, cfg: config.Default(), outDir: t.TempDir()}
}

func TestHandlerScene(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/json/scene", nil))

	var summary sceneSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if summary.Name != "WebLevel" || summary.Cameras != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.StaticMeshes) != 1 || summary.StaticMeshes[0] != "Crate" {
		t.Errorf("static meshes = %v", summary.StaticMeshes)
	}
}

func TestHandlerDownloadScene(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/scene", nil))

	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="WebLevel.json"` {
		t.Errorf("content disposition = %q", cd)
	}
	var summary sceneSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if summary.Name != "WebLevel" {
		t.Errorf("summary name = %q", summary.Name)
	}
}

func TestHandlerDownloadMap(t *testing.T) {
	s := testServer(t)

	// export first, then download
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/action/export/demo", nil))
	if _, err := os.Stat(filepath.Join(s.outDir, "demo"+s.cfg.Formats.Map)); err != nil {
		t.Fatalf("export left no map file: %v", err)
	}

	rec = httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/map/demo", nil))
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="demo.map"` {
		t.Errorf("content disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty map download")
	}
}

func TestHandlerDownloadMapMissing(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/map/nope", nil))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error body for missing map")
	}
}
