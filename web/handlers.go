package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/merkaril/sceneexport/level"
	"github.com/merkaril/sceneexport/status"
	"github.com/merkaril/sceneexport/utils"
	"github.com/merkaril/sceneexport/webutils"
)

type sceneSummary struct {
	Name           string   `json:"name"`
	Cameras        int      `json:"cameras"`
	Lights         int      `json:"lights"`
	StaticMeshes   []string `json:"static_meshes"`
	SkeletalMeshes []string `json:"skeletal_meshes"`
}

func (s *Server) summary() *sceneSummary {
	summary := &sceneSummary{
		Name:    s.scene.Name(),
		Cameras: len(s.scene.Cameras()),
		Lights:  len(s.scene.DirectionalLights()),
	}
	for _, a := range s.scene.StaticMeshActors() {
		summary.StaticMeshes = append(summary.StaticMeshes, a.Mesh.Ref().Name)
	}
	for _, a := range s.scene.SkeletalMeshActors() {
		summary.SkeletalMeshes = append(summary.SkeletalMeshes, a.Mesh.Ref().Name)
	}
	return summary
}

func (s *Server) HandlerScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.summary())
}

func (s *Server) HandlerDumpScene(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	webutils.WriteResult(w, []byte(utils.SDump(s.scene)))
}

// HandlerExport runs a synchronous map export into the server's
// output directory. Progress goes out over the status websocket.
func (s *Server) HandlerExport(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || strings.ContainsAny(name, "/\\") {
		webutils.WriteError(w, errors.Errorf("Invalid map name %q", name))
		return
	}

	exporter, err := level.NewExporter(s.scene, s.cfg, s.textures)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	destPath := filepath.Join(s.outDir, name+s.cfg.Formats.Map)
	if err := exporter.ExportMap(destPath); err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "Map export failed"))
		return
	}

	webutils.WriteJson(w, map[string]string{"map": destPath})
}

// HandlerDownloadScene serves the scene summary as a downloadable
// json document.
func (s *Server) HandlerDownloadScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJsonFile(w, s.summary(), s.scene.Name())
}

// HandlerDownloadMap streams a previously exported map file as an
// attachment.
func (s *Server) HandlerDownloadMap(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || strings.ContainsAny(name, "/\\") {
		webutils.WriteError(w, errors.Errorf("Invalid map name %q", name))
		return
	}

	fileName := name + s.cfg.Formats.Map
	f, err := os.Open(filepath.Join(s.outDir, fileName))
	if err != nil {
		webutils.WriteError(w, errors.Wrapf(err, "Map %q not exported yet", name))
		return
	}
	defer f.Close()
	webutils.WriteFile(w, f, fileName)
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *Server) HandlerStatusWs(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	status.NewClient(conn)
}
