// Package web serves a small UI around one loaded scene: browse its
// contents, trigger a map export and download the produced files.
package web

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/merkaril/sceneexport/config"
	"github.com/merkaril/sceneexport/host"
	"github.com/merkaril/sceneexport/logger"
)

type Server struct {
	scene    host.Scene
	cfg      *config.Config
	textures host.TextureDumper
	outDir   string
}

func StartServer(addr string, scene host.Scene, cfg *config.Config,
	textures host.TextureDumper, outDir string) error {

	s := &Server{scene: scene, cfg: cfg, textures: textures, outDir: outDir}

	h := handlers.RecoveryHandler()(s.router())
	h = handlers.LoggingHandler(os.Stdout, h)

	logger.Sugar.Infof("starting server %v", addr)

	return http.ListenAndServe(addr, h)
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/scene", s.HandlerScene)
	r.HandleFunc("/dump/scene", s.HandlerDumpScene)
	r.HandleFunc("/action/export/{name}", s.HandlerExport)
	r.HandleFunc("/download/scene", s.HandlerDownloadScene)
	r.HandleFunc("/download/map/{name}", s.HandlerDownloadMap)
	r.HandleFunc("/ws/status", s.HandlerStatusWs)
	r.PathPrefix("/files/").Handler(
		http.StripPrefix("/files/", http.FileServer(http.Dir(s.outDir))))
	return r
}
